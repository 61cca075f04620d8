package httphandler

import (
	"time"

	"github.com/mkhalid/poshak/internal/core/domain"
)

type (
	Product struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		Price        float64   `json:"price"`
		DisplayPrice string    `json:"display_price"`
		ImageURLs    []string  `json:"image_urls"`
		Category     string    `json:"category"`
		Sizes        []string  `json:"sizes"`
		SellerID     string    `json:"seller_id"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CartItem struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	CartView struct {
		Items        []CartItem `json:"items"`
		TotalItems   int        `json:"total_items"`
		TotalPrice   float64    `json:"total_price"`
		DisplayTotal string     `json:"display_total"`
	}

	WishlistView struct {
		Items []Product `json:"items"`
	}

	CurrencyView struct {
		Currency string `json:"currency"`
	}

	ShippingAddress struct {
		FullName string `json:"full_name"`
		Street   string `json:"street"`
		City     string `json:"city"`
		Country  string `json:"country"`
		Phone    string `json:"phone"`
	}

	OrderItem struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	}

	OrderView struct {
		ID            string          `json:"id"`
		Items         []OrderItem     `json:"items"`
		TotalPrice    float64         `json:"total_price"`
		DisplayTotal  string          `json:"display_total"`
		PaymentMethod string          `json:"payment_method"`
		Shipping      ShippingAddress `json:"shipping"`
		CreatedAt     time.Time       `json:"created_at"`
	}

	UserView struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		IsSeller    bool   `json:"is_seller"`
	}

	AuthResponse struct {
		Token string   `json:"token"`
		User  UserView `json:"user"`
	}

	ProductDetailsView struct {
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Category       string  `json:"category"`
		SuggestedPrice float64 `json:"suggested_price"`
	}

	StyleAdviceView struct {
		Suggestions []string `json:"suggestions"`
	}

	TryOnView struct {
		ImageURL    string `json:"image_url"`
		CreditsLeft int    `json:"credits_left"`
	}
)

type (
	CartItemRequest struct {
		ProductID string `json:"product_id"`
	}

	QuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	CurrencyRequest struct {
		Currency string `json:"currency"`
	}

	PlaceOrderRequest struct {
		PaymentMethod string          `json:"payment_method"`
		Shipping      ShippingAddress `json:"shipping"`
	}

	RegisterRequest struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
		Seller      bool   `json:"seller"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	SellerProductRequest struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		ImageURLs   []string `json:"image_urls"`
		Category    string   `json:"category"`
		Sizes       []string `json:"sizes"`
	}

	ProductDetailsRequest struct {
		ImageURL string `json:"image_url"`
	}

	StyleAdviceRequest struct {
		ProductID string `json:"product_id"`
	}

	TryOnRequest struct {
		PersonImageURL string `json:"person_image_url"`
		ProductID      string `json:"product_id"`
	}
)

func productToView(p domain.Product, cur domain.Currency) Product {
	sizes := make([]string, len(p.Sizes))
	for i, s := range p.Sizes {
		sizes[i] = string(s)
	}

	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DisplayPrice: domain.FormatPrice(p.Price, cur),
		ImageURLs:    p.ImageURLs,
		Category:     string(p.Category),
		Sizes:        sizes,
		SellerID:     p.SellerID,
		CreatedAt:    p.CreatedAt,
	}
}

func productsToView(ps []domain.Product, cur domain.Currency) []Product {
	vs := make([]Product, len(ps))
	for i, p := range ps {
		vs[i] = productToView(p, cur)
	}
	return vs
}

func cartToView(c domain.Cart, cur domain.Currency) CartView {
	items := make([]CartItem, 0, c.Len())
	for _, it := range c.Items() {
		items = append(items, CartItem{
			Product:  productToView(it.Product, cur),
			Quantity: it.Quantity,
		})
	}
	return CartView{
		Items:        items,
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice(),
		DisplayTotal: domain.FormatPrice(c.TotalPrice(), cur),
	}
}

func orderToView(o domain.Order, cur domain.Currency) OrderView {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return OrderView{
		ID:            o.ID,
		Items:         items,
		TotalPrice:    o.TotalPrice,
		DisplayTotal:  domain.FormatPrice(o.TotalPrice, cur),
		PaymentMethod: o.PaymentMethod,
		Shipping: ShippingAddress{
			FullName: o.Shipping.FullName,
			Street:   o.Shipping.Street,
			City:     o.Shipping.City,
			Country:  o.Shipping.Country,
			Phone:    o.Shipping.Phone,
		},
		CreatedAt: o.CreatedAt,
	}
}

func userToView(u domain.User) UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsSeller:    u.IsSeller,
	}
}
