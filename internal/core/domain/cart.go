package domain

type CartItem struct {
	Product  Product
	Quantity int
}

// Cart is the ordered collection of line items for one user.
// At most one item per product id; items keep insertion order.
type Cart struct {
	items []CartItem
}

// NewCart builds a cart from previously persisted items.
// Duplicate product ids merge their quantities and
// non-positive quantities are lifted to 1.
func NewCart(items ...CartItem) Cart {
	var c Cart
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		if i := c.index(it.Product.ID); i >= 0 {
			c.items[i].Quantity += qty
			continue
		}
		c.items = append(c.items, CartItem{Product: it.Product, Quantity: qty})
	}
	return c
}

func (c Cart) index(productID string) int {
	for i, it := range c.items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add appends p with quantity 1, or increments the
// quantity of the existing line item.
func (c *Cart) Add(p Product) {
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Remove deletes the line item with productID. Absent id is a no-op.
func (c *Cart) Remove(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// SetQuantity sets the line item quantity. Quantity below 1 removes
// the item. Absent id is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c Cart) Len() int {
	return len(c.items)
}

// TotalItems is the sum of quantities across all line items.
func (c Cart) TotalItems() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price*quantity across all line items,
// in the canonical currency.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}
