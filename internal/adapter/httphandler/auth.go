package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/mkhalid/poshak/internal/core/port"
)

type AuthHandler struct {
	auth port.Authenticator
}

func RegisterAuth(mux *http.ServeMux, auth port.Authenticator) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/register", h.PostRegister)
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
}

func (h AuthHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostRegister"
	log := slog.With("op", op)

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, token, err := h.auth.Register(
		r.Context(), req.Email, req.Password, req.DisplayName, req.Seller,
	)
	if err != nil {
		log.Warn("failed to register", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  userToView(u),
	})

	log.Info("user registered", "userID", u.ID)
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("failed to login", "err", err)
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  userToView(u),
	})
}
