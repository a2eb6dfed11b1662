package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
)

// ClientRepository encapsulates client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository instantiates repository.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (name, email, phone)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	const query = `
        SELECT id, name, email, phone, created_at, updated_at
        FROM clients WHERE id=$1`

	var client domain.Client
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	const query = `
        SELECT id, name, email, phone, created_at, updated_at
        FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
