package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/port"
)

// StylistHandler fronts the generative features: product listing
// drafts for sellers, outfit suggestions and virtual try-on.
type StylistHandler struct {
	stylist port.Stylist
}

func RegisterStylist(
	mux *http.ServeMux,
	requireAuth, requireSeller Middleware,
	stylist port.Stylist,
) {
	h := StylistHandler{stylist}
	mux.Handle("POST /v1/ai/product-details",
		requireSeller(http.HandlerFunc(h.PostProductDetails)))
	mux.HandleFunc("POST /v1/ai/style-suggestions", h.PostStyleSuggestions)
	mux.Handle("POST /v1/ai/try-on",
		requireAuth(http.HandlerFunc(h.PostTryOn)))
}

func (h StylistHandler) PostProductDetails(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StylistHandler.PostProductDetails"
	log := slog.With("op", op)

	var req ProductDetailsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		http.Error(w, "image_url is required", http.StatusBadRequest)
		return
	}

	d, err := h.stylist.GenerateProductDetails(r.Context(), req.ImageURL)
	if err != nil {
		log.Error("failed to generate product details", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductDetailsView{
		Name:           d.Name,
		Description:    d.Description,
		Category:       string(d.Category),
		SuggestedPrice: d.SuggestedPrice,
	})
}

func (h StylistHandler) PostStyleSuggestions(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StylistHandler.PostStyleSuggestions"
	log := slog.With("op", op)

	var req StyleAdviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	advice, err := h.stylist.SuggestStyles(r.Context(), req.ProductID)
	if err != nil {
		log.Warn("failed to suggest styles", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StyleAdviceView{
		Suggestions: advice.Suggestions,
	})
}

func (h StylistHandler) PostTryOn(w http.ResponseWriter, r *http.Request) {
	const op = "StylistHandler.PostTryOn"
	log := slog.With("op", op)

	var req TryOnRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PersonImageURL == "" {
		http.Error(w, "person_image_url is required", http.StatusBadRequest)
		return
	}

	p, _ := requestUser(r)
	res, err := h.stylist.TryOn(
		r.Context(), p.userID, req.PersonImageURL, req.ProductID,
	)
	if err != nil {
		log.Warn("failed to try on", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TryOnView{
		ImageURL:    res.ImageURL,
		CreditsLeft: res.CreditsLeft,
	})
}
