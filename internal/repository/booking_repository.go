package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
)

// BookingRepository encapsulates booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, clientID *string, limit, offset int) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (client_id, pet_id, service, date, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.ClientID,
		booking.PetID,
		booking.Service,
		booking.Date,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `
        SELECT id, client_id, pet_id, service, date, status, created_at, updated_at
        FROM bookings WHERE id=$1`

	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.PetID,
		&booking.Service,
		&booking.Date,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, clientID *string, limit, offset int) ([]domain.Booking, error) {
	const base = `
        SELECT id, client_id, pet_id, service, date, status, created_at, updated_at
        FROM bookings`

	var (
		rows pgx.Rows
		err  error
	)
	if clientID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE client_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, *clientID, limit, offset)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.ClientID,
			&booking.PetID,
			&booking.Service,
			&booking.Date,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
