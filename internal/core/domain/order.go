package domain

import (
	"errors"
	"time"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

type ShippingAddress struct {
	FullName string
	Street   string
	City     string
	Country  string
	Phone    string
}

// Order is an immutable record of a placed checkout.
// Payment is recorded, not processed.
type Order struct {
	ID            string
	UserID        string
	Items         []OrderItem
	TotalPrice    float64
	PaymentMethod string
	Shipping      ShippingAddress
	CreatedAt     time.Time
}

// NewOrder snapshots the cart into an order. The order keeps its own
// copy of name and price so later catalog edits do not rewrite
// history.
func NewOrder(
	id, userID string, c Cart,
	payment string, addr ShippingAddress, at time.Time,
) (Order, error) {
	if c.Len() == 0 {
		return Order{}, ErrEmptyCart
	}

	items := make([]OrderItem, 0, c.Len())
	for _, it := range c.Items() {
		items = append(items, OrderItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
		})
	}

	return Order{
		ID:            id,
		UserID:        userID,
		Items:         items,
		TotalPrice:    c.TotalPrice(),
		PaymentMethod: payment,
		Shipping:      addr,
		CreatedAt:     at,
	}, nil
}
