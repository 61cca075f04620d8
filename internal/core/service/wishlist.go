package service

import (
	"context"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.WishlistOperator = (*Wishlists)(nil)

// Wishlists owns the per-user saved-products set with write-through
// persistence. Toggle semantics belong to the caller: check the
// returned wishlist and call add or remove accordingly.
type Wishlists struct {
	products  port.ProductsReader
	wishlists port.WishlistRepository
}

func NewWishlists(
	products port.ProductsReader, wishlists port.WishlistRepository,
) Wishlists {
	return Wishlists{products, wishlists}
}

func (s Wishlists) Wishlist(
	ctx context.Context, userID string,
) (domain.Wishlist, error) {
	const op = "Wishlists.Wishlist"

	if err := ctx.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	w, err := s.wishlists.WishlistByUser(ctx, userID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func (s Wishlists) AddToWishlist(
	ctx context.Context, userID, productID string,
) (domain.Wishlist, error) {
	const op = "Wishlists.AddToWishlist"

	if err := ctx.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	w, err := s.wishlists.WishlistByUser(ctx, userID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	w.Add(p)

	if err := s.wishlists.SaveWishlist(ctx, userID, w); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func (s Wishlists) RemoveFromWishlist(
	ctx context.Context, userID, productID string,
) (domain.Wishlist, error) {
	const op = "Wishlists.RemoveFromWishlist"

	if err := ctx.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	w, err := s.wishlists.WishlistByUser(ctx, userID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	w.Remove(productID)

	if err := s.wishlists.SaveWishlist(ctx, userID, w); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}
