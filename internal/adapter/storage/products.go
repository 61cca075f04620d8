package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.ProductsReader = (*ProductsRepository)(nil)
var _ port.ProductsWriter = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

const productColumns = `
	product_id, name, description, price,
	image_urls, category, sizes, seller_id, created_at`

func (r ProductsRepository) Products(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.Products"

	query := `
		SELECT` + productColumns + `
		FROM products ORDER BY created_at DESC;`

	ps, err := r.queryProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) ProductsBySeller(
	ctx context.Context, sellerID string,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ProductsBySeller"

	query := `
		SELECT` + productColumns + `
		FROM products WHERE seller_id = $1 ORDER BY created_at DESC;`

	ps, err := r.queryProducts(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) ProductByID(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "ProductsRepository.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + productColumns + `
		FROM products WHERE product_id = $1;`

	row := r.sqldb.QueryRowContext(ctx, query, productID)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) StoreProduct(
	ctx context.Context, p domain.Product,
) error {
	const op = "ProductsRepository.StoreProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (` + productColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			image_urls = EXCLUDED.image_urls,
			category = EXCLUDED.category,
			sizes = EXCLUDED.sizes;`

	imgB, _ := json.Marshal(p.ImageURLs)
	sizesB, _ := json.Marshal(p.Sizes)

	_, err := r.sqldb.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price,
		string(imgB), string(p.Category), string(sizesB),
		p.SellerID, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) DeleteProduct(
	ctx context.Context, productID string,
) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := r.sqldb.ExecContext(
		ctx, `DELETE FROM products WHERE product_id = $1;`, productID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r ProductsRepository) queryProducts(
	ctx context.Context, query string, args ...any,
) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}

// scanProduct maps one row to a domain product, applying the lenient
// category and size normalization on the way out of the database.
func scanProduct(scan func(...any) error) (domain.Product, error) {
	var (
		p         domain.Product
		category  string
		imageURLs string
		sizes     string
	)

	err := scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&imageURLs, &category, &sizes, &p.SellerID, &p.CreatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}

	if err := json.Unmarshal([]byte(imageURLs), &p.ImageURLs); err != nil {
		return domain.Product{}, err
	}

	var ss []string
	if err := json.Unmarshal([]byte(sizes), &ss); err != nil {
		return domain.Product{}, err
	}

	p.Category = domain.ParseCategory(category)
	p.Sizes = domain.ParseSizes(ss)
	return p, nil
}
