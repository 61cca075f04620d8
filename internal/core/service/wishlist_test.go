package service_test

import (
	"testing"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistsAddToWishlist(t *testing.T) {
	t.Run("ResolvesProductAndPersists", func(t *testing.T) {
		products := new(MockProductsReader)
		wishlists := new(MockWishlistRepository)
		s := service.NewWishlists(products, wishlists)

		products.On("ProductByID", t.Context(), "p1").Return(dress(), nil)
		wishlists.On("WishlistByUser", t.Context(), testUserID).
			Return(domain.Wishlist{}, nil)

		var saved domain.Wishlist
		wishlists.On("SaveWishlist", t.Context(), testUserID, mock.Anything).
			Run(func(args mock.Arguments) {
				saved = args.Get(2).(domain.Wishlist)
			}).
			Return(nil)

		w, err := s.AddToWishlist(t.Context(), testUserID, "p1")
		require.NoError(t, err)

		assert.True(t, w.Contains("p1"))
		assert.Equal(t, 1, saved.Len())
		wishlists.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("ReAddIsIdempotent", func(t *testing.T) {
		products := new(MockProductsReader)
		wishlists := new(MockWishlistRepository)
		s := service.NewWishlists(products, wishlists)

		stored := domain.NewWishlist(dress())
		products.On("ProductByID", t.Context(), "p1").Return(dress(), nil)
		wishlists.On("WishlistByUser", t.Context(), testUserID).
			Return(stored, nil)

		var saved domain.Wishlist
		wishlists.On("SaveWishlist", t.Context(), testUserID, mock.Anything).
			Run(func(args mock.Arguments) {
				saved = args.Get(2).(domain.Wishlist)
			}).
			Return(nil)

		w, err := s.AddToWishlist(t.Context(), testUserID, "p1")
		require.NoError(t, err)

		assert.Equal(t, 1, w.Len())
		assert.Equal(t, 1, saved.Len())
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		products := new(MockProductsReader)
		wishlists := new(MockWishlistRepository)
		s := service.NewWishlists(products, wishlists)

		products.On("ProductByID", t.Context(), "missing").
			Return(domain.Product{}, domain.ErrNotFound)

		_, err := s.AddToWishlist(t.Context(), testUserID, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		wishlists.AssertNotCalled(t, "SaveWishlist")
	})
}

func TestWishlistsRemoveFromWishlist(t *testing.T) {
	t.Run("RemovesAndPersists", func(t *testing.T) {
		products := new(MockProductsReader)
		wishlists := new(MockWishlistRepository)
		s := service.NewWishlists(products, wishlists)

		stored := domain.NewWishlist(dress())
		wishlists.On("WishlistByUser", t.Context(), testUserID).
			Return(stored, nil)
		wishlists.On("SaveWishlist", t.Context(), testUserID, mock.Anything).
			Return(nil)

		w, err := s.RemoveFromWishlist(t.Context(), testUserID, "p1")
		require.NoError(t, err)

		assert.False(t, w.Contains("p1"))
		assert.Equal(t, 0, w.Len())
	})

	t.Run("AbsentProductIsNoop", func(t *testing.T) {
		products := new(MockProductsReader)
		wishlists := new(MockWishlistRepository)
		s := service.NewWishlists(products, wishlists)

		stored := domain.NewWishlist(dress())
		wishlists.On("WishlistByUser", t.Context(), testUserID).
			Return(stored, nil)
		wishlists.On("SaveWishlist", t.Context(), testUserID, mock.Anything).
			Return(nil)

		w, err := s.RemoveFromWishlist(t.Context(), testUserID, "other")
		require.NoError(t, err)

		assert.Equal(t, 1, w.Len())
		assert.True(t, w.Contains("p1"))
	})
}
