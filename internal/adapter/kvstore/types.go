package kvstore

import (
	"time"

	"github.com/mkhalid/poshak/internal/core/domain"
)

type (
	product struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		ImageURLs   []string  `json:"image_urls"`
		Category    string    `json:"category"`
		Sizes       []string  `json:"sizes"`
		SellerID    string    `json:"seller_id"`
		CreatedAt   time.Time `json:"created_at"`
	}

	cartItem struct {
		Product  product `json:"product"`
		Quantity int     `json:"quantity"`
	}
)

func productFromDomain(p domain.Product) product {
	sizes := make([]string, len(p.Sizes))
	for i, s := range p.Sizes {
		sizes[i] = string(s)
	}
	return product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURLs:   p.ImageURLs,
		Category:    string(p.Category),
		Sizes:       sizes,
		SellerID:    p.SellerID,
		CreatedAt:   p.CreatedAt,
	}
}

// productToDomain normalizes leniently on the way in: stored records
// with a stale category or size set resolve to the fallbacks instead
// of being rejected.
func productToDomain(v product) domain.Product {
	return domain.Product{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		ImageURLs:   v.ImageURLs,
		Category:    domain.ParseCategory(v.Category),
		Sizes:       domain.ParseSizes(v.Sizes),
		SellerID:    v.SellerID,
		CreatedAt:   v.CreatedAt,
	}
}

func productsFromDomain(ps []domain.Product) []product {
	vs := make([]product, len(ps))
	for i, p := range ps {
		vs[i] = productFromDomain(p)
	}
	return vs
}

func productsToDomain(vs []product) []domain.Product {
	ps := make([]domain.Product, len(vs))
	for i, v := range vs {
		ps[i] = productToDomain(v)
	}
	return ps
}

func cartItemsFromDomain(items []domain.CartItem) []cartItem {
	vs := make([]cartItem, len(items))
	for i, it := range items {
		vs[i] = cartItem{
			Product:  productFromDomain(it.Product),
			Quantity: it.Quantity,
		}
	}
	return vs
}

func cartItemsToDomain(vs []cartItem) []domain.CartItem {
	items := make([]domain.CartItem, len(vs))
	for i, v := range vs {
		items[i] = domain.CartItem{
			Product:  productToDomain(v.Product),
			Quantity: v.Quantity,
		}
	}
	return items
}
