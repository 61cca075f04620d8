package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

type CurrencyHandler struct {
	currencies port.CurrencySelector
}

func RegisterCurrency(
	mux *http.ServeMux,
	requireAuth Middleware,
	currencies port.CurrencySelector,
) {
	h := CurrencyHandler{currencies}
	mux.Handle("GET /v1/currency",
		requireAuth(http.HandlerFunc(h.GetCurrency)))
	mux.Handle("PUT /v1/currency",
		requireAuth(http.HandlerFunc(h.PutCurrency)))
}

func (h CurrencyHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	const op = "CurrencyHandler.GetCurrency"
	log := slog.With("op", op)

	p, _ := requestUser(r)
	cur, err := h.currencies.Currency(r.Context(), p.userID)
	if err != nil {
		log.Error("failed to get currency", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CurrencyView{Currency: string(cur)})
}

func (h CurrencyHandler) PutCurrency(w http.ResponseWriter, r *http.Request) {
	const op = "CurrencyHandler.PutCurrency"
	log := slog.With("op", op)

	var req CurrencyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, _ := requestUser(r)
	cur := domain.ParseCurrency(req.Currency)
	if err := h.currencies.SetCurrency(r.Context(), p.userID, cur); err != nil {
		log.Error("failed to set currency", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CurrencyView{Currency: string(cur)})
}
