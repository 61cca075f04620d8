package auth

import (
	"fmt"

	"github.com/mkhalid/poshak/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

var _ port.PasswordHasher = (*BcryptHasher)(nil)

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	const op = "BcryptHasher.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(b), nil
}

func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
