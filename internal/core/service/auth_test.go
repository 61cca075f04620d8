package service_test

import (
	"testing"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthRegister(t *testing.T) {
	t.Run("NewUser", func(t *testing.T) {
		users := new(MockUsersStorage)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenIssuer)
		s := service.NewAuth(users, hasher, tokens)

		users.On("UserByEmail", t.Context(), "buyer@example.com").
			Return(domain.User{}, domain.ErrNotFound)
		hasher.On("Hash", "secretpw").Return("hashed", nil)
		users.On("StoreUser", t.Context(), mock.Anything).Return(nil)
		tokens.On("Issue", mock.Anything, false).Return("token-123", nil)

		u, token, err := s.Register(
			t.Context(), " Buyer@Example.com ", "secretpw", "Buyer", false,
		)
		require.NoError(t, err)

		assert.Equal(t, "buyer@example.com", u.Email)
		assert.Equal(t, "hashed", u.PasswordHash)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "token-123", token)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		users := new(MockUsersStorage)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenIssuer)
		s := service.NewAuth(users, hasher, tokens)

		users.On("UserByEmail", t.Context(), "buyer@example.com").
			Return(domain.User{ID: "u1"}, nil)

		_, _, err := s.Register(
			t.Context(), "buyer@example.com", "pw", "Buyer", false,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})
}

func TestAuthLogin(t *testing.T) {
	t.Run("ValidCredentials", func(t *testing.T) {
		users := new(MockUsersStorage)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenIssuer)
		s := service.NewAuth(users, hasher, tokens)

		stored := domain.User{
			ID: "u1", Email: "buyer@example.com",
			PasswordHash: "hashed", IsSeller: true,
		}
		users.On("UserByEmail", t.Context(), "buyer@example.com").
			Return(stored, nil)
		hasher.On("Compare", "hashed", "secretpw").Return(nil)
		tokens.On("Issue", "u1", true).Return("token-123", nil)

		u, token, err := s.Login(t.Context(), "buyer@example.com", "secretpw")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "token-123", token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		users := new(MockUsersStorage)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenIssuer)
		s := service.NewAuth(users, hasher, tokens)

		users.On("UserByEmail", t.Context(), "buyer@example.com").
			Return(domain.User{ID: "u1", PasswordHash: "hashed"}, nil)
		hasher.On("Compare", "hashed", "wrong").Return(assert.AnError)

		_, _, err := s.Login(t.Context(), "buyer@example.com", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownUserMapsToInvalidCredentials", func(t *testing.T) {
		users := new(MockUsersStorage)
		hasher := new(MockPasswordHasher)
		tokens := new(MockTokenIssuer)
		s := service.NewAuth(users, hasher, tokens)

		users.On("UserByEmail", t.Context(), "ghost@example.com").
			Return(domain.User{}, domain.ErrNotFound)

		_, _, err := s.Login(t.Context(), "ghost@example.com", "pw")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
