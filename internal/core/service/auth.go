package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.Authenticator = (*Auth)(nil)

type Auth struct {
	users  port.UsersStorage
	hasher port.PasswordHasher
	tokens port.TokenIssuer
}

func NewAuth(
	users port.UsersStorage,
	hasher port.PasswordHasher,
	tokens port.TokenIssuer,
) Auth {
	return Auth{users, hasher, tokens}
}

func (s Auth) Register(
	ctx context.Context, email, password, displayName string, seller bool,
) (domain.User, string, error) {
	const op = "Auth.Register"

	if err := ctx.Err(); err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.UserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, domain.ErrUserExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		IsSeller:     seller,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.StoreUser(ctx, u); err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.tokens.Issue(u.ID, u.IsSeller)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return u, token, nil
}

func (s Auth) Login(
	ctx context.Context, email, password string,
) (domain.User, string, error) {
	const op = "Auth.Login"

	if err := ctx.Err(); err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return domain.User{}, "", fmt.Errorf(
			"%s: %w", op, domain.ErrInvalidCredentials,
		)
	}

	token, err := s.tokens.Issue(u.ID, u.IsSeller)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return u, token, nil
}
