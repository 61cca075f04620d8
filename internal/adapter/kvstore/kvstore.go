// Package kvstore persists per-user session state (cart, wishlist,
// currency selection, try-on credits) in a local LevelDB database.
// Each data kind owns a fixed key prefix; the value is JSON.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ port.CartRepository = (*Sessions)(nil)
var _ port.WishlistRepository = (*Sessions)(nil)
var _ port.CurrencyRepository = (*Sessions)(nil)
var _ port.TryOnCreditsRepository = (*Sessions)(nil)

const (
	cartKeyPrefix     = "cart:"
	wishlistKeyPrefix = "wishlist:"
	currencyKeyPrefix = "currency:"
	tryonKeyPrefix    = "tryon:"
)

type Sessions struct {
	db *leveldb.DB
}

// Open opens (or creates) the session database at path.
func Open(path string) (Sessions, error) {
	const op = "Sessions.Open"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return Sessions{}, fmt.Errorf("%s: %w", op, err)
	}
	return Sessions{db}, nil
}

// New wraps an already opened LevelDB handle.
func New(db *leveldb.DB) Sessions {
	return Sessions{db}
}

func (s Sessions) Close() {
	const op = "Sessions.Close"
	log := slog.With("op", op)

	log.Info("closing session store...")
	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("session store is closed")
}

func (s Sessions) load(key string) ([]byte, error) {
	b, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s Sessions) save(key string, value []byte) error {
	return s.db.Put([]byte(key), value, nil)
}

// CartByUser restores the user's cart. A user with no stored cart
// gets an empty one, not an error.
func (s Sessions) CartByUser(
	ctx context.Context, userID string,
) (domain.Cart, error) {
	const op = "Sessions.CartByUser"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := s.load(cartKeyPrefix + userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	var items []cartItem
	if err := json.Unmarshal(b, &items); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.NewCart(cartItemsToDomain(items)...), nil
}

func (s Sessions) SaveCart(
	ctx context.Context, userID string, c domain.Cart,
) error {
	const op = "Sessions.SaveCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b, err := json.Marshal(cartItemsFromDomain(c.Items()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.save(cartKeyPrefix+userID, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Sessions) WishlistByUser(
	ctx context.Context, userID string,
) (domain.Wishlist, error) {
	const op = "Sessions.WishlistByUser"

	if err := ctx.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := s.load(wishlistKeyPrefix + userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Wishlist{}, nil
		}
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	var ps []product
	if err := json.Unmarshal(b, &ps); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.NewWishlist(productsToDomain(ps)...), nil
}

func (s Sessions) SaveWishlist(
	ctx context.Context, userID string, w domain.Wishlist,
) error {
	const op = "Sessions.SaveWishlist"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b, err := json.Marshal(productsFromDomain(w.Items()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.save(wishlistKeyPrefix+userID, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CurrencyByUser restores the display currency. No stored selection
// or an unrecognized one resolves to USD.
func (s Sessions) CurrencyByUser(
	ctx context.Context, userID string,
) (domain.Currency, error) {
	const op = "Sessions.CurrencyByUser"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	b, err := s.load(currencyKeyPrefix + userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CurrencyUSD, nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return domain.ParseCurrency(string(b)), nil
}

func (s Sessions) SaveCurrency(
	ctx context.Context, userID string, c domain.Currency,
) error {
	const op = "Sessions.SaveCurrency"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.save(currencyKeyPrefix+userID, []byte(c)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Sessions) CreditsByUser(
	ctx context.Context, userID string,
) (int, error) {
	const op = "Sessions.CreditsByUser"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	b, err := s.load(tryonKeyPrefix + userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s Sessions) SaveCredits(
	ctx context.Context, userID string, n int,
) error {
	const op = "Sessions.SaveCredits"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.save(tryonKeyPrefix+userID, []byte(strconv.Itoa(n))); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
