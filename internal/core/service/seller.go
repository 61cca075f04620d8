package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.SellerCatalog = (*Sellers)(nil)

// Sellers manages a seller's own listings. Incoming products pass
// through lenient normalization: a bad category or size set never
// rejects the record, it resolves to the documented fallbacks.
type Sellers struct {
	reader port.ProductsReader
	writer port.ProductsWriter
}

func NewSellers(reader port.ProductsReader, writer port.ProductsWriter) Sellers {
	return Sellers{reader, writer}
}

func (s Sellers) SellerProducts(
	ctx context.Context, sellerID string,
) ([]domain.Product, error) {
	const op = "Sellers.SellerProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.reader.ProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Sellers) CreateProduct(
	ctx context.Context, sellerID string, p domain.Product,
) (domain.Product, error) {
	const op = "Sellers.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p.ID = uuid.NewString()
	p.SellerID = sellerID
	p.CreatedAt = time.Now().UTC()
	p = normalizeProduct(p)

	if err := s.writer.StoreProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Sellers) UpdateProduct(
	ctx context.Context, sellerID string, p domain.Product,
) (domain.Product, error) {
	const op = "Sellers.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.reader.ProductByID(ctx, p.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if current.SellerID != sellerID {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	}

	p.SellerID = sellerID
	p.CreatedAt = current.CreatedAt
	p = normalizeProduct(p)

	if err := s.writer.StoreProduct(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Sellers) DeleteProduct(
	ctx context.Context, sellerID, productID string,
) error {
	const op = "Sellers.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.reader.ProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if current.SellerID != sellerID {
		return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	}

	if err := s.writer.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func normalizeProduct(p domain.Product) domain.Product {
	p.Category = domain.ParseCategory(string(p.Category))

	ss := make([]string, len(p.Sizes))
	for i, v := range p.Sizes {
		ss[i] = string(v)
	}
	p.Sizes = domain.ParseSizes(ss)

	if p.Price < 0 {
		p.Price = 0
	}
	return p
}
