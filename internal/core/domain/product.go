package domain

import "time"

type Category string

const (
	CategoryTops        Category = "Tops"
	CategoryDresses     Category = "Dresses"
	CategoryPants       Category = "Pants"
	CategoryAccessories Category = "Accessories"
	CategoryShoes       Category = "Shoes"
	CategoryOuterwear   Category = "Outerwear"
)

// Categories lists every valid category. The first member is the
// fallback for unrecognized source values.
var Categories = []Category{
	CategoryTops,
	CategoryDresses,
	CategoryPants,
	CategoryAccessories,
	CategoryShoes,
	CategoryOuterwear,
}

// ParseCategory resolves s to a valid category,
// falling back to the first member of [Categories].
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return Categories[0]
}

type Size string

const (
	SizeXS      Size = "XS"
	SizeS       Size = "S"
	SizeM       Size = "M"
	SizeL       Size = "L"
	SizeXL      Size = "XL"
	SizeOneSize Size = "One Size"
)

var SizeChart = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeOneSize}

func validSize(s string) bool {
	for _, v := range SizeChart {
		if string(v) == s {
			return true
		}
	}
	return false
}

// ParseSizes keeps the recognized values of ss preserving their order.
// The result is never empty: unrecognized and missing values
// collapse to [SizeOneSize].
func ParseSizes(ss []string) []Size {
	var sizes []Size
	for _, s := range ss {
		if validSize(s) {
			sizes = append(sizes, Size(s))
		}
	}
	if len(sizes) == 0 {
		return []Size{SizeOneSize}
	}
	return sizes
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURLs   []string
	Category    Category
	Sizes       []Size
	SellerID    string
	CreatedAt   time.Time
}

// HasSize reports whether the product is offered in size s.
func (p Product) HasSize(s Size) bool {
	for _, v := range p.Sizes {
		if v == s {
			return true
		}
	}
	return false
}
