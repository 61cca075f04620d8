package service

import (
	"context"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.CatalogViewer = (*Catalog)(nil)

// Catalog serves the storefront's read side: the full product list
// narrowed by the caller's filters.
type Catalog struct {
	products port.ProductsReader
}

func NewCatalog(products port.ProductsReader) Catalog {
	return Catalog{products}
}

// VisibleProducts loads the catalog and derives the visible subset.
// Filtering is recomputed on every call over the current snapshot.
func (s Catalog) VisibleProducts(
	ctx context.Context, f domain.Filters,
) ([]domain.Product, error) {
	const op = "Catalog.VisibleProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f.Apply(ps), nil
}

func (s Catalog) Product(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "Catalog.Product"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
