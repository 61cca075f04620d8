package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return false
	}
	return true
}

// writeErr maps core sentinel errors onto HTTP statuses. Anything
// unrecognized is reported as service unavailable, matching the
// storage and broker failure modes.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrUserExists):
		http.Error(w, "email already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrEmptyCart):
		http.Error(w, "cart is empty", http.StatusConflict)
	case errors.Is(err, domain.ErrNoTryOnCredits):
		http.Error(
			w,
			"try-on credits exhausted, place an order to refill",
			http.StatusConflict,
		)
	default:
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}
}
