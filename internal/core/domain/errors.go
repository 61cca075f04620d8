package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoTryOnCredits     = errors.New("no try-on credits left")
	ErrForbidden          = errors.New("forbidden")
)
