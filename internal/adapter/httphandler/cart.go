package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/port"
)

type CartHandler struct {
	carts      port.CartOperator
	currencies port.CurrencySelector
}

func RegisterCart(
	mux *http.ServeMux,
	requireAuth Middleware,
	carts port.CartOperator,
	currencies port.CurrencySelector,
) {
	h := CartHandler{carts, currencies}
	mux.Handle("GET /v1/cart",
		requireAuth(http.HandlerFunc(h.GetCart)))
	mux.Handle("POST /v1/cart",
		requireAuth(http.HandlerFunc(h.PostItem)))
	mux.Handle("PATCH /v1/cart/{productID}",
		requireAuth(http.HandlerFunc(h.PatchItem)))
	mux.Handle("DELETE /v1/cart/{productID}",
		requireAuth(http.HandlerFunc(h.DeleteItem)))
	mux.Handle("DELETE /v1/cart",
		requireAuth(http.HandlerFunc(h.DeleteCart)))
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	c, err := h.carts.Cart(r.Context(), p.userID)
	if err != nil {
		log.Error("failed to get cart", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToView(c, viewingCurrency(r, h.currencies)))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req CartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, _ := requestUser(r)
	c, err := h.carts.AddToCart(r.Context(), p.userID, req.ProductID)
	if err != nil {
		log.Warn("failed to add to cart", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToView(c, viewingCurrency(r, h.currencies)))
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	var req QuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, _ := requestUser(r)
	c, err := h.carts.UpdateQuantity(
		r.Context(), p.userID, r.PathValue("productID"), req.Quantity,
	)
	if err != nil {
		log.Warn("failed to update quantity", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToView(c, viewingCurrency(r, h.currencies)))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	c, err := h.carts.RemoveFromCart(
		r.Context(), p.userID, r.PathValue("productID"),
	)
	if err != nil {
		log.Warn("failed to remove from cart", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToView(c, viewingCurrency(r, h.currencies)))
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	if err := h.carts.ClearCart(r.Context(), p.userID); err != nil {
		log.Error("failed to clear cart", "err", err)
		writeErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
