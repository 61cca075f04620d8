package domain

// ProductDetails is the generated listing draft for a product image.
type ProductDetails struct {
	Name           string
	Description    string
	Category       Category
	SuggestedPrice float64
}

// StyleAdvice is a set of generated outfit suggestions for a product.
type StyleAdvice struct {
	Suggestions []string
}

// TryOnResult references the generated try-on image.
type TryOnResult struct {
	ImageURL    string
	CreditsLeft int
}
