// Package auth issues and verifies bearer tokens and hashes
// passwords for the account endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/mkhalid/poshak/internal/core/port"
)

var ErrInvalidToken = errors.New("invalid token")

var _ port.TokenIssuer = (*TokenManager)(nil)

type Claims struct {
	UserID string `json:"user_id"`
	Seller bool   `json:"seller"`
	jwt.StandardClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) TokenManager {
	return TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m TokenManager) Issue(userID string, seller bool) (string, error) {
	const op = "TokenManager.Issue"

	claims := Claims{
		UserID: userID,
		Seller: seller,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(m.ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// Verify parses and validates a signed token,
// returning the claims baked into it.
func (m TokenManager) Verify(signed string) (Claims, error) {
	const op = "TokenManager.Verify"

	token, err := jwt.ParseWithClaims(
		signed, &Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return *claims, nil
}
