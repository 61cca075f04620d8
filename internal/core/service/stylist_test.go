package service_test

import (
	"testing"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylistTryOn(t *testing.T) {
	t.Run("SpendsOneCredit", func(t *testing.T) {
		composer := new(MockImageComposer)
		products := new(MockProductsReader)
		credits := new(MockTryOnCredits)
		s := service.NewStylist(composer, products, credits)

		p := dress()
		p.ImageURLs = []string{"https://img/p1.jpg"}

		credits.On("CreditsByUser", t.Context(), testUserID).Return(2, nil)
		products.On("ProductByID", t.Context(), "p1").Return(p, nil)
		composer.On(
			"ComposeTryOn", t.Context(), "https://img/me.jpg", "https://img/p1.jpg",
		).Return("https://img/result.jpg", nil)
		credits.On("SaveCredits", t.Context(), testUserID, 1).Return(nil)

		res, err := s.TryOn(t.Context(), testUserID, "https://img/me.jpg", "p1")
		require.NoError(t, err)

		assert.Equal(t, "https://img/result.jpg", res.ImageURL)
		assert.Equal(t, 1, res.CreditsLeft)
		credits.AssertExpectations(t)
	})

	t.Run("NoCreditsLeft", func(t *testing.T) {
		composer := new(MockImageComposer)
		products := new(MockProductsReader)
		credits := new(MockTryOnCredits)
		s := service.NewStylist(composer, products, credits)

		credits.On("CreditsByUser", t.Context(), testUserID).Return(0, nil)

		_, err := s.TryOn(t.Context(), testUserID, "https://img/me.jpg", "p1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoTryOnCredits)
		composer.AssertNotCalled(t, "ComposeTryOn")
	})

	t.Run("FirstUseDefaultsCredits", func(t *testing.T) {
		composer := new(MockImageComposer)
		products := new(MockProductsReader)
		credits := new(MockTryOnCredits)
		s := service.NewStylist(composer, products, credits)

		credits.On("CreditsByUser", t.Context(), testUserID).
			Return(0, domain.ErrNotFound)
		products.On("ProductByID", t.Context(), "p1").Return(dress(), nil)
		composer.On("ComposeTryOn", t.Context(), "u", "").
			Return("https://img/out.jpg", nil)
		credits.On(
			"SaveCredits", t.Context(), testUserID, service.DefaultTryOnCredits-1,
		).Return(nil)

		res, err := s.TryOn(t.Context(), testUserID, "u", "p1")
		require.NoError(t, err)
		assert.Equal(t, service.DefaultTryOnCredits-1, res.CreditsLeft)
	})
}

func TestStylistGenerateProductDetails(t *testing.T) {
	composer := new(MockImageComposer)
	products := new(MockProductsReader)
	credits := new(MockTryOnCredits)
	s := service.NewStylist(composer, products, credits)

	composer.On("ComposeProductDetails", t.Context(), "https://img/raw.jpg").
		Return(domain.ProductDetails{
			Name:           "Kurta",
			Description:    "Embroidered lawn kurta",
			Category:       domain.Category("Garments"), // unknown
			SuggestedPrice: 35,
		}, nil)

	d, err := s.GenerateProductDetails(t.Context(), "https://img/raw.jpg")
	require.NoError(t, err)

	// unknown category normalizes to the first enum member
	assert.Equal(t, domain.CategoryTops, d.Category)
	assert.Equal(t, "Kurta", d.Name)
}

func TestStylistSuggestStyles(t *testing.T) {
	composer := new(MockImageComposer)
	products := new(MockProductsReader)
	credits := new(MockTryOnCredits)
	s := service.NewStylist(composer, products, credits)

	p := dress()
	products.On("ProductByID", t.Context(), "p1").Return(p, nil)
	composer.On("ComposeStyleAdvice", t.Context(), p).
		Return(domain.StyleAdvice{
			Suggestions: []string{"pair with white sneakers"},
		}, nil)

	advice, err := s.SuggestStyles(t.Context(), "p1")
	require.NoError(t, err)
	assert.Len(t, advice.Suggestions, 1)
}
