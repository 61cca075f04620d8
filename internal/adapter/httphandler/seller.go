package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

type SellerHandler struct {
	sellers port.SellerCatalog
}

func RegisterSeller(
	mux *http.ServeMux,
	requireSeller Middleware,
	sellers port.SellerCatalog,
) {
	h := SellerHandler{sellers}
	mux.Handle("GET /v1/seller/products",
		requireSeller(http.HandlerFunc(h.GetProducts)))
	mux.Handle("POST /v1/seller/products",
		requireSeller(http.HandlerFunc(h.PostProduct)))
	mux.Handle("PUT /v1/seller/products/{id}",
		requireSeller(http.HandlerFunc(h.PutProduct)))
	mux.Handle("DELETE /v1/seller/products/{id}",
		requireSeller(http.HandlerFunc(h.DeleteProduct)))
}

func (h SellerHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "SellerHandler.GetProducts"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	ps, err := h.sellers.SellerProducts(r.Context(), p.userID)
	if err != nil {
		log.Error("failed to list seller products", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productsToView(ps, domain.CurrencyUSD))
}

func (h SellerHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "SellerHandler.PostProduct"
	log := slog.With("op", op)

	var req SellerProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, _ := requestUser(r)
	created, err := h.sellers.CreateProduct(
		r.Context(), p.userID, h.toDomain(req),
	)
	if err != nil {
		log.Error("failed to create product", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, productToView(created, domain.CurrencyUSD))

	log.Info("product created", "productID", created.ID)
}

func (h SellerHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "SellerHandler.PutProduct"
	log := slog.With("op", op)

	var req SellerProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dp := h.toDomain(req)
	dp.ID = r.PathValue("id")

	p, _ := requestUser(r)
	updated, err := h.sellers.UpdateProduct(r.Context(), p.userID, dp)
	if err != nil {
		log.Warn("failed to update product", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productToView(updated, domain.CurrencyUSD))
}

func (h SellerHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "SellerHandler.DeleteProduct"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	err := h.sellers.DeleteProduct(r.Context(), p.userID, r.PathValue("id"))
	if err != nil {
		log.Warn("failed to delete product", "err", err)
		writeErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (SellerHandler) toDomain(req SellerProductRequest) domain.Product {
	return domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURLs:   req.ImageURLs,
		Category:    domain.ParseCategory(req.Category),
		Sizes:       domain.ParseSizes(req.Sizes),
	}
}
