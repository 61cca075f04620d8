package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

// DefaultTryOnCredits is the number of virtual try-on calls a user
// gets; the counter refills when an order is placed.
const DefaultTryOnCredits = 3

var _ port.Stylist = (*StylistService)(nil)

// StylistService fronts the generative endpoint. The endpoint stays
// an opaque remote call; this service only shapes requests from the
// catalog and enforces the try-on credit budget.
type StylistService struct {
	composer port.ImageComposer
	products port.ProductsReader
	credits  port.TryOnCreditsRepository
}

func NewStylist(
	composer port.ImageComposer,
	products port.ProductsReader,
	credits port.TryOnCreditsRepository,
) StylistService {
	return StylistService{composer, products, credits}
}

func (s StylistService) GenerateProductDetails(
	ctx context.Context, imageURL string,
) (domain.ProductDetails, error) {
	const op = "StylistService.GenerateProductDetails"

	if err := ctx.Err(); err != nil {
		return domain.ProductDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	d, err := s.composer.ComposeProductDetails(ctx, imageURL)
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	d.Category = domain.ParseCategory(string(d.Category))
	return d, nil
}

func (s StylistService) SuggestStyles(
	ctx context.Context, productID string,
) (domain.StyleAdvice, error) {
	const op = "StylistService.SuggestStyles"

	if err := ctx.Err(); err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}

	advice, err := s.composer.ComposeStyleAdvice(ctx, p)
	if err != nil {
		return domain.StyleAdvice{}, fmt.Errorf("%s: %w", op, err)
	}
	return advice, nil
}

func (s StylistService) TryOn(
	ctx context.Context, userID, personImageURL, productID string,
) (domain.TryOnResult, error) {
	const op = "StylistService.TryOn"

	if err := ctx.Err(); err != nil {
		return domain.TryOnResult{}, fmt.Errorf("%s: %w", op, err)
	}

	left, err := s.credits.CreditsByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.TryOnResult{}, fmt.Errorf("%s: %w", op, err)
		}
		left = DefaultTryOnCredits
	}
	if left <= 0 {
		return domain.TryOnResult{}, fmt.Errorf(
			"%s: %w", op, domain.ErrNoTryOnCredits,
		)
	}

	p, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		return domain.TryOnResult{}, fmt.Errorf("%s: %w", op, err)
	}

	var productImage string
	if len(p.ImageURLs) > 0 {
		productImage = p.ImageURLs[0]
	}

	imageURL, err := s.composer.ComposeTryOn(ctx, personImageURL, productImage)
	if err != nil {
		return domain.TryOnResult{}, fmt.Errorf("%s: %w", op, err)
	}

	left--
	if err := s.credits.SaveCredits(ctx, userID, left); err != nil {
		return domain.TryOnResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.TryOnResult{ImageURL: imageURL, CreditsLeft: left}, nil
}
