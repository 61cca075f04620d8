package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

type orderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type shippingAddress struct {
	FullName string `json:"full_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, o domain.Order,
) (storeErr error) {
	const op = "OrdersRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}
		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	items := make([]orderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItem(it)
	}
	itemsB, _ := json.Marshal(items)
	addrB, _ := json.Marshal(shippingAddress(o.Shipping))

	query := `
		INSERT INTO orders (
			order_id, user_id, items, total_price,
			payment_method, shipping_address, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err = tx.ExecContext(ctx, query,
		o.ID, o.UserID, string(itemsB), o.TotalPrice,
		o.PaymentMethod, string(addrB), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r OrdersRepository) OrdersByUser(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "OrdersRepository.OrdersByUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			order_id, user_id, items, total_price,
			payment_method, shipping_address, created_at
		FROM orders
		WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o      domain.Order
			itemsS string
			addrS  string
		)
		err := rows.Scan(
			&o.ID, &o.UserID, &itemsS, &o.TotalPrice,
			&o.PaymentMethod, &addrS, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var items []orderItem
		if err := json.Unmarshal([]byte(itemsS), &items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		o.Items = make([]domain.OrderItem, len(items))
		for i, it := range items {
			o.Items[i] = domain.OrderItem(it)
		}

		var addr shippingAddress
		if err := json.Unmarshal([]byte(addrS), &addr); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		o.Shipping = domain.ShippingAddress(addr)

		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}
