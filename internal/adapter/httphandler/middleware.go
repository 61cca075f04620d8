package httphandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkhalid/poshak/internal/adapter/auth"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

type Middleware func(http.Handler) http.Handler

type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

type principal struct {
	userID string
	seller bool
}

type ctxKey int

const principalKey ctxKey = iota

// AuthMiddleware gates routes on a bearer token.
type AuthMiddleware struct {
	tv TokenVerifier
}

func NewAuthMiddleware(tv TokenVerifier) AuthMiddleware {
	return AuthMiddleware{tv}
}

func (m AuthMiddleware) Require(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		p, ok := m.verify(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	}
	return http.HandlerFunc(hf)
}

func (m AuthMiddleware) RequireSeller(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		p, ok := m.verify(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !p.seller {
			http.Error(w, "sellers only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), p)))
	}
	return http.HandlerFunc(hf)
}

// Optional attaches the principal when a valid token is present and
// passes the request through untouched otherwise.
func (m AuthMiddleware) Optional(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if p, ok := m.verify(r); ok {
			r = r.WithContext(withPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

func (m AuthMiddleware) verify(r *http.Request) (principal, bool) {
	token, ok := strings.CutPrefix(
		r.Header.Get("Authorization"), "Bearer ",
	)
	if !ok || token == "" {
		return principal{}, false
	}

	claims, err := m.tv.Verify(token)
	if err != nil {
		return principal{}, false
	}
	return principal{userID: claims.UserID, seller: claims.Seller}, true
}

func withPrincipal(ctx context.Context, p principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func requestUser(r *http.Request) (principal, bool) {
	p, ok := r.Context().Value(principalKey).(principal)
	return p, ok
}
