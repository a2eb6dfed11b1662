package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
)

// ErrDuplicateIdentity is returned when a username is already taken.
// Uniqueness is enforced by the accounts_username_key constraint so
// concurrent registrations of the same username cannot both succeed.
var ErrDuplicateIdentity = errors.New("duplicate identity")

const uniqueViolationCode = "23505"

// AccountRepository defines persistence access for login accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (username, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.Username,
		account.PasswordHash,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const query = `
        SELECT id, username, password_hash, created_at, updated_at
        FROM accounts WHERE username=$1`

	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}
