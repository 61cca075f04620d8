package service_test

import (
	"context"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsReader struct {
	mock.Mock
}

func (m *MockProductsReader) Products(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductsReader) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsReader) ProductsBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockProductsWriter struct {
	mock.Mock
}

func (m *MockProductsWriter) StoreProduct(ctx context.Context, p domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductsWriter) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) CartByUser(ctx context.Context, userID string) (domain.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartRepository) SaveCart(ctx context.Context, userID string, c domain.Cart) error {
	args := m.Called(ctx, userID, c)
	return args.Error(0)
}

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) WishlistByUser(ctx context.Context, userID string) (domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) SaveWishlist(ctx context.Context, userID string, w domain.Wishlist) error {
	args := m.Called(ctx, userID, w)
	return args.Error(0)
}

type MockOrdersStorage struct {
	mock.Mock
}

func (m *MockOrdersStorage) StoreOrder(ctx context.Context, o domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrdersStorage) OrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockTryOnCredits struct {
	mock.Mock
}

func (m *MockTryOnCredits) CreditsByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockTryOnCredits) SaveCredits(ctx context.Context, userID string, n int) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrderPlaced(ctx context.Context, o domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockImageComposer struct {
	mock.Mock
}

func (m *MockImageComposer) ComposeProductDetails(ctx context.Context, imageURL string) (domain.ProductDetails, error) {
	args := m.Called(ctx, imageURL)
	return args.Get(0).(domain.ProductDetails), args.Error(1)
}

func (m *MockImageComposer) ComposeStyleAdvice(ctx context.Context, p domain.Product) (domain.StyleAdvice, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.StyleAdvice), args.Error(1)
}

func (m *MockImageComposer) ComposeTryOn(ctx context.Context, personImageURL, productImageURL string) (string, error) {
	args := m.Called(ctx, personImageURL, productImageURL)
	return args.String(0), args.Error(1)
}

type MockUsersStorage struct {
	mock.Mock
}

func (m *MockUsersStorage) StoreUser(ctx context.Context, u domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUsersStorage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID string, seller bool) (string, error) {
	args := m.Called(userID, seller)
	return args.String(0), args.Error(1)
}
