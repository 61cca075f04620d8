package service_test

import (
	"testing"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func dress() domain.Product {
	return domain.Product{
		ID:       "p1",
		Name:     "Red Dress",
		Price:    40,
		Category: domain.CategoryDresses,
		Sizes:    []domain.Size{domain.SizeM},
	}
}

func TestCartsAddToCart(t *testing.T) {
	t.Run("ResolvesProductAndPersists", func(t *testing.T) {
		products := new(MockProductsReader)
		carts := new(MockCartRepository)
		s := service.NewCarts(products, carts)

		products.On("ProductByID", t.Context(), "p1").Return(dress(), nil)
		carts.On("CartByUser", t.Context(), testUserID).
			Return(domain.Cart{}, nil)
		carts.On("SaveCart", t.Context(), testUserID, mock.Anything).
			Return(nil)

		c, err := s.AddToCart(t.Context(), testUserID, "p1")
		require.NoError(t, err)

		assert.Equal(t, 1, c.TotalItems())
		carts.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		products := new(MockProductsReader)
		carts := new(MockCartRepository)
		s := service.NewCarts(products, carts)

		products.On("ProductByID", t.Context(), "missing").
			Return(domain.Product{}, domain.ErrNotFound)

		_, err := s.AddToCart(t.Context(), testUserID, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		carts.AssertNotCalled(t, "SaveCart")
	})
}

func TestCartsUpdateQuantity(t *testing.T) {
	products := new(MockProductsReader)
	carts := new(MockCartRepository)
	s := service.NewCarts(products, carts)

	stored := domain.NewCart(domain.CartItem{Product: dress(), Quantity: 2})
	carts.On("CartByUser", t.Context(), testUserID).Return(stored, nil)

	var saved domain.Cart
	carts.On("SaveCart", t.Context(), testUserID, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(domain.Cart)
		}).
		Return(nil)

	c, err := s.UpdateQuantity(t.Context(), testUserID, "p1", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, saved.Len())
}

func TestCartsClearCart(t *testing.T) {
	products := new(MockProductsReader)
	carts := new(MockCartRepository)
	s := service.NewCarts(products, carts)

	carts.On("SaveCart", t.Context(), testUserID, domain.Cart{}).Return(nil)

	err := s.ClearCart(t.Context(), testUserID)
	require.NoError(t, err)
	carts.AssertExpectations(t)
}
