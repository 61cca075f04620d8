package port

import (
	"context"

	"github.com/mkhalid/poshak/internal/core/domain"
)

// Inbound ports implemented by the core services.

type CatalogViewer interface {
	VisibleProducts(context.Context, domain.Filters) ([]domain.Product, error)
	Product(ctx context.Context, productID string) (domain.Product, error)
}

type CartOperator interface {
	Cart(ctx context.Context, userID string) (domain.Cart, error)
	AddToCart(ctx context.Context, userID, productID string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type WishlistOperator interface {
	Wishlist(ctx context.Context, userID string) (domain.Wishlist, error)
	AddToWishlist(ctx context.Context, userID, productID string) (domain.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) (domain.Wishlist, error)
}

type CurrencySelector interface {
	Currency(ctx context.Context, userID string) (domain.Currency, error)
	SetCurrency(ctx context.Context, userID string, c domain.Currency) error
}

type CheckoutProcessor interface {
	PlaceOrder(ctx context.Context, userID string, payment string, addr domain.ShippingAddress) (domain.Order, error)
	Orders(ctx context.Context, userID string) ([]domain.Order, error)
}

type SellerCatalog interface {
	SellerProducts(ctx context.Context, sellerID string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, sellerID string, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, sellerID string, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID string) error
}

type Authenticator interface {
	Register(ctx context.Context, email, password, displayName string, seller bool) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

type Stylist interface {
	GenerateProductDetails(ctx context.Context, imageURL string) (domain.ProductDetails, error)
	SuggestStyles(ctx context.Context, productID string) (domain.StyleAdvice, error)
	TryOn(ctx context.Context, userID, personImageURL, productID string) (domain.TryOnResult, error)
}

// Outbound ports implemented by the adapters.

type ProductsReader interface {
	Products(context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, productID string) (domain.Product, error)
	ProductsBySeller(ctx context.Context, sellerID string) ([]domain.Product, error)
}

type ProductsWriter interface {
	StoreProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type OrdersStorage interface {
	StoreOrder(context.Context, domain.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type UsersStorage interface {
	StoreUser(context.Context, domain.User) error
	UserByEmail(ctx context.Context, email string) (domain.User, error)
}

type CartRepository interface {
	CartByUser(ctx context.Context, userID string) (domain.Cart, error)
	SaveCart(ctx context.Context, userID string, c domain.Cart) error
}

type WishlistRepository interface {
	WishlistByUser(ctx context.Context, userID string) (domain.Wishlist, error)
	SaveWishlist(ctx context.Context, userID string, w domain.Wishlist) error
}

type CurrencyRepository interface {
	CurrencyByUser(ctx context.Context, userID string) (domain.Currency, error)
	SaveCurrency(ctx context.Context, userID string, c domain.Currency) error
}

type TryOnCreditsRepository interface {
	CreditsByUser(ctx context.Context, userID string) (int, error)
	SaveCredits(ctx context.Context, userID string, n int) error
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(context.Context, domain.Order) error
}

// ImageComposer is the generative endpoint boundary.
type ImageComposer interface {
	ComposeProductDetails(ctx context.Context, imageURL string) (domain.ProductDetails, error)
	ComposeStyleAdvice(ctx context.Context, p domain.Product) (domain.StyleAdvice, error)
	ComposeTryOn(ctx context.Context, personImageURL, productImageURL string) (string, error)
}

type TokenIssuer interface {
	Issue(userID string, seller bool) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
