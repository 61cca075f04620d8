package service

import (
	"context"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.CurrencySelector = (*Currencies)(nil)

// Currencies keeps the per-user display currency selection.
// Unknown or missing stored values resolve to USD.
type Currencies struct {
	currencies port.CurrencyRepository
}

func NewCurrencies(currencies port.CurrencyRepository) Currencies {
	return Currencies{currencies}
}

func (s Currencies) Currency(
	ctx context.Context, userID string,
) (domain.Currency, error) {
	const op = "Currencies.Currency"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.currencies.CurrencyByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s Currencies) SetCurrency(
	ctx context.Context, userID string, c domain.Currency,
) error {
	const op = "Currencies.SetCurrency"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c = domain.ParseCurrency(string(c))

	if err := s.currencies.SaveCurrency(ctx, userID, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
