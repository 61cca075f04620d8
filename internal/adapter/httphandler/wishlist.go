package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/port"
)

type WishlistHandler struct {
	wishlists  port.WishlistOperator
	currencies port.CurrencySelector
}

func RegisterWishlist(
	mux *http.ServeMux,
	requireAuth Middleware,
	wishlists port.WishlistOperator,
	currencies port.CurrencySelector,
) {
	h := WishlistHandler{wishlists, currencies}
	mux.Handle("GET /v1/wishlist",
		requireAuth(http.HandlerFunc(h.GetWishlist)))
	mux.Handle("POST /v1/wishlist",
		requireAuth(http.HandlerFunc(h.PostItem)))
	mux.Handle("DELETE /v1/wishlist/{productID}",
		requireAuth(http.HandlerFunc(h.DeleteItem)))
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetWishlist"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	wl, err := h.wishlists.Wishlist(r.Context(), p.userID)
	if err != nil {
		log.Error("failed to get wishlist", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	writeJSON(w, http.StatusOK, WishlistView{
		Items: productsToView(wl.Items(), cur),
	})
}

func (h WishlistHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostItem"
	log := slog.With("op", op)

	var req CartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, _ := requestUser(r)
	wl, err := h.wishlists.AddToWishlist(r.Context(), p.userID, req.ProductID)
	if err != nil {
		log.Warn("failed to add to wishlist", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	writeJSON(w, http.StatusOK, WishlistView{
		Items: productsToView(wl.Items(), cur),
	})
}

func (h WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteItem"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	wl, err := h.wishlists.RemoveFromWishlist(
		r.Context(), p.userID, r.PathValue("productID"),
	)
	if err != nil {
		log.Warn("failed to remove from wishlist", "err", err)
		writeErr(w, err)
		return
	}

	cur := viewingCurrency(r, h.currencies)
	writeJSON(w, http.StatusOK, WishlistView{
		Items: productsToView(wl.Items(), cur),
	})
}
