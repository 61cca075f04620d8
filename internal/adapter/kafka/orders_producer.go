package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
	"github.com/mkhalid/poshak/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrderEventsProducer = (*OrdersProducer)(nil)

// OrdersProducer emits one record per placed order, keyed by order id.
type OrdersProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrdersProducer(
	opts ...ProducerOpt,
) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrdersProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return OrdersProducer{options.cl, options.encoder}, nil
}

func (p OrdersProducer) Close() {
	const op = "OrdersProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrdersProducer) ProduceOrderPlaced(
	ctx context.Context, order domain.Order,
) error {
	const op = "OrdersProducer.ProduceOrderPlaced"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(order)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.produce(ctx, r); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p OrdersProducer) createRecord(
	order domain.Order,
) (*kgo.Record, error) {
	const op = "OrdersProducer.createRecord"

	s := p.toSchema(order)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(s.OrderID), Value: v}, nil
}

func (p OrdersProducer) produce(
	ctx context.Context, r *kgo.Record,
) error {
	const op = "OrdersProducer.produce"
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p OrdersProducer) toSchema(
	order domain.Order,
) (s schema.OrderPlacedV1) {
	s.OrderID = order.ID
	s.UserID = order.UserID
	s.TotalPrice = order.TotalPrice
	s.PaymentMethod = order.PaymentMethod
	s.CreatedAt = order.CreatedAt.UTC().Format(time.RFC3339)

	s.Items = make([]schema.OrderItemV1, len(order.Items))
	for i := range order.Items {
		s.Items[i].ProductID = order.Items[i].ProductID
		s.Items[i].Name = order.Items[i].Name
		s.Items[i].UnitPrice = order.Items[i].Price
		s.Items[i].Quantity = order.Items[i].Quantity
	}
	return s
}
