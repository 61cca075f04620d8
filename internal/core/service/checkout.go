package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.CheckoutProcessor = (*Checkout)(nil)

// Checkout turns the user's cart into an order record. Payment is a
// recorded field, never a captured transaction. Placing an order
// clears the cart, refills the try-on credits and emits an
// order-placed event for downstream consumers.
type Checkout struct {
	carts   port.CartRepository
	orders  port.OrdersStorage
	credits port.TryOnCreditsRepository
	events  port.OrderEventsProducer
}

func NewCheckout(
	carts port.CartRepository,
	orders port.OrdersStorage,
	credits port.TryOnCreditsRepository,
	events port.OrderEventsProducer,
) Checkout {
	return Checkout{carts, orders, credits, events}
}

func (s Checkout) PlaceOrder(
	ctx context.Context, userID string,
	payment string, addr domain.ShippingAddress,
) (domain.Order, error) {
	const op = "Checkout.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.carts.CartByUser(ctx, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	order, err := domain.NewOrder(
		uuid.NewString(), userID, c, payment, addr, time.Now().UTC(),
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.orders.StoreOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.carts.SaveCart(ctx, userID, domain.Cart{}); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.credits.SaveCredits(ctx, userID, DefaultTryOnCredits); err != nil {
		log.Warn("failed to refill try-on credits", "err", err)
	}

	if err := s.events.ProduceOrderPlaced(ctx, order); err != nil {
		log.Error("failed to produce order event", "err", err, "orderID", order.ID)
	}

	log.Info("order placed", "orderID", order.ID, "total", order.TotalPrice)
	return order, nil
}

func (s Checkout) Orders(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "Checkout.Orders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := s.orders.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}
