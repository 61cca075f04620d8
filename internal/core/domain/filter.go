package domain

import "strings"

type PriceRange struct {
	Min float64
	Max float64
}

func (r PriceRange) unset() bool {
	return r.Min == 0 && r.Max == 0
}

// Filters is the visible-subset specification built by the caller.
// An empty dimension places no constraint on that dimension.
type Filters struct {
	Categories  []Category
	Sizes       []Size
	PriceRange  PriceRange
	SearchQuery string
}

// Apply derives the visible subset of ps. All dimensions combine with
// logical AND and the relative order of ps is preserved. Apply is
// pure: it never mutates ps and identical inputs yield identical
// output.
func (f Filters) Apply(ps []Product) []Product {
	visible := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.matches(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

func (f Filters) matches(p Product) bool {
	return f.matchesQuery(p) &&
		f.matchesCategory(p) &&
		f.matchesSize(p) &&
		f.matchesPrice(p)
}

func (f Filters) matchesQuery(p Product) bool {
	if f.SearchQuery == "" {
		return true
	}
	q := strings.ToLower(f.SearchQuery)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func (f Filters) matchesCategory(p Product) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if p.Category == c {
			return true
		}
	}
	return false
}

// matchesSize requires a non-empty intersection between the product
// sizes and the filter sizes, not a subset.
func (f Filters) matchesSize(p Product) bool {
	if len(f.Sizes) == 0 {
		return true
	}
	for _, s := range f.Sizes {
		if p.HasSize(s) {
			return true
		}
	}
	return false
}

func (f Filters) matchesPrice(p Product) bool {
	if f.PriceRange.unset() {
		return true
	}
	return f.PriceRange.Min <= p.Price && p.Price <= f.PriceRange.Max
}
