package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkhalid/poshak/internal/core/domain"
	"github.com/mkhalid/poshak/internal/core/port"
)

var _ port.UsersStorage = (*UsersRepository)(nil)

type UsersRepository struct {
	sqldb sqldb
}

func NewUsersRepository(sqldb sqldb) UsersRepository {
	return UsersRepository{sqldb}
}

func (r UsersRepository) StoreUser(
	ctx context.Context, u domain.User,
) error {
	const op = "UsersRepository.StoreUser"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO users (
			user_id, email, display_name,
			password_hash, is_seller, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6);`

	_, err := r.sqldb.ExecContext(ctx, query,
		u.ID, u.Email, u.DisplayName,
		u.PasswordHash, u.IsSeller, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r UsersRepository) UserByEmail(
	ctx context.Context, email string,
) (domain.User, error) {
	const op = "UsersRepository.UserByEmail"

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			user_id, email, display_name,
			password_hash, is_seller, created_at
		FROM users WHERE email = $1;`

	var u domain.User
	err := r.sqldb.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.DisplayName,
		&u.PasswordHash, &u.IsSeller, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
