package domain

// Wishlist is the set of saved products for one user.
// Membership is keyed by product id; insertion order is kept
// for display but has no effect on membership queries.
type Wishlist struct {
	items []Product
}

// NewWishlist builds a wishlist from previously persisted products,
// dropping duplicates by product id.
func NewWishlist(items ...Product) Wishlist {
	var w Wishlist
	for _, p := range items {
		w.Add(p)
	}
	return w
}

// Add inserts p if absent. Adding a present product is a no-op.
func (w *Wishlist) Add(p Product) {
	if w.Contains(p.ID) {
		return
	}
	w.items = append(w.items, p)
}

// Remove deletes the product with productID. Absent id is a no-op.
func (w *Wishlist) Remove(productID string) {
	for i, p := range w.items {
		if p.ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

func (w Wishlist) Contains(productID string) bool {
	for _, p := range w.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved products in insertion order.
func (w Wishlist) Items() []Product {
	items := make([]Product, len(w.items))
	copy(items, w.items)
	return items
}

func (w Wishlist) Len() int {
	return len(w.items)
}
