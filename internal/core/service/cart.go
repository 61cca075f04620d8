package service

import (
	"context"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.CartOperator = (*Carts)(nil)

// Carts owns the per-user shopping cart. Every mutation writes the
// whole cart back through the repository (write-through), so a
// session restart restores the exact state.
type Carts struct {
	products port.ProductsReader
	carts    port.CartRepository
}

func NewCarts(products port.ProductsReader, carts port.CartRepository) Carts {
	return Carts{products, carts}
}

func (s Carts) Cart(
	ctx context.Context, userID string,
) (domain.Cart, error) {
	const op = "Carts.Cart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.carts.CartByUser(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Carts) AddToCart(
	ctx context.Context, userID, productID string,
) (domain.Cart, error) {
	const op = "Carts.AddToCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.carts.CartByUser(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c.Add(p)

	if err := s.carts.SaveCart(ctx, userID, c); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Carts) UpdateQuantity(
	ctx context.Context, userID, productID string, quantity int,
) (domain.Cart, error) {
	const op = "Carts.UpdateQuantity"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.carts.CartByUser(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c.SetQuantity(productID, quantity)

	if err := s.carts.SaveCart(ctx, userID, c); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Carts) RemoveFromCart(
	ctx context.Context, userID, productID string,
) (domain.Cart, error) {
	const op = "Carts.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.carts.CartByUser(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	c.Remove(productID)

	if err := s.carts.SaveCart(ctx, userID, c); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Carts) ClearCart(ctx context.Context, userID string) error {
	const op = "Carts.ClearCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.carts.SaveCart(ctx, userID, domain.Cart{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
