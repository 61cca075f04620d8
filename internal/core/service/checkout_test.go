package service_test

import (
	"testing"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutAddr() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName: "Test Buyer",
		Street:   "1 Mall Road",
		City:     "Lahore",
		Country:  "PK",
	}
}

func TestCheckoutPlaceOrder(t *testing.T) {
	t.Run("SnapshotsCartAndClearsIt", func(t *testing.T) {
		carts := new(MockCartRepository)
		orders := new(MockOrdersStorage)
		credits := new(MockTryOnCredits)
		events := new(MockOrderEventsProducer)
		s := service.NewCheckout(carts, orders, credits, events)

		stored := domain.NewCart(
			domain.CartItem{Product: dress(), Quantity: 2},
		)
		carts.On("CartByUser", t.Context(), testUserID).Return(stored, nil)
		carts.On("SaveCart", t.Context(), testUserID, domain.Cart{}).Return(nil)
		orders.On("StoreOrder", t.Context(), mock.Anything).Return(nil)
		credits.On(
			"SaveCredits", t.Context(), testUserID, service.DefaultTryOnCredits,
		).Return(nil)
		events.On("ProduceOrderPlaced", t.Context(), mock.Anything).Return(nil)

		order, err := s.PlaceOrder(
			t.Context(), testUserID, "cod", checkoutAddr(),
		)
		require.NoError(t, err)

		assert.NotEmpty(t, order.ID)
		assert.Equal(t, testUserID, order.UserID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.InDelta(t, 80, order.TotalPrice, 1e-9)

		carts.AssertExpectations(t)
		orders.AssertExpectations(t)
		credits.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		carts := new(MockCartRepository)
		orders := new(MockOrdersStorage)
		credits := new(MockTryOnCredits)
		events := new(MockOrderEventsProducer)
		s := service.NewCheckout(carts, orders, credits, events)

		carts.On("CartByUser", t.Context(), testUserID).
			Return(domain.Cart{}, nil)

		_, err := s.PlaceOrder(t.Context(), testUserID, "cod", checkoutAddr())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
		orders.AssertNotCalled(t, "StoreOrder")
	})

	t.Run("EventFailureDoesNotFailOrder", func(t *testing.T) {
		carts := new(MockCartRepository)
		orders := new(MockOrdersStorage)
		credits := new(MockTryOnCredits)
		events := new(MockOrderEventsProducer)
		s := service.NewCheckout(carts, orders, credits, events)

		stored := domain.NewCart(
			domain.CartItem{Product: dress(), Quantity: 1},
		)
		carts.On("CartByUser", t.Context(), testUserID).Return(stored, nil)
		carts.On("SaveCart", t.Context(), testUserID, domain.Cart{}).Return(nil)
		orders.On("StoreOrder", t.Context(), mock.Anything).Return(nil)
		credits.On("SaveCredits", t.Context(), testUserID, mock.Anything).
			Return(nil)
		events.On("ProduceOrderPlaced", t.Context(), mock.Anything).
			Return(assert.AnError)

		_, err := s.PlaceOrder(t.Context(), testUserID, "card", checkoutAddr())
		assert.NoError(t, err)
	})
}
