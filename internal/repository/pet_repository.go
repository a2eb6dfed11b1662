package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
)

// PetRepository encapsulates pet persistence.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
	List(ctx context.Context, ownerID *string, limit, offset int) ([]domain.Pet, error)
	Delete(ctx context.Context, id string) error
}

type petRepository struct {
	pool *pgxpool.Pool
}

// NewPetRepository instantiates repository.
func NewPetRepository(pool *pgxpool.Pool) PetRepository {
	return &petRepository{pool: pool}
}

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	const query = `
        INSERT INTO pets (name, species, breed, owner_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.OwnerID,
	).Scan(&pet.ID, &pet.CreatedAt, &pet.UpdatedAt)
}

func (r *petRepository) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	const query = `
        SELECT id, name, species, breed, owner_id, created_at, updated_at
        FROM pets WHERE id=$1`

	var pet domain.Pet
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&pet.ID,
		&pet.Name,
		&pet.Species,
		&pet.Breed,
		&pet.OwnerID,
		&pet.CreatedAt,
		&pet.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) List(ctx context.Context, ownerID *string, limit, offset int) ([]domain.Pet, error) {
	const base = `
        SELECT id, name, species, breed, owner_id, created_at, updated_at
        FROM pets`

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE owner_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, *ownerID, limit, offset)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := make([]domain.Pet, 0)
	for rows.Next() {
		var pet domain.Pet
		if err := rows.Scan(
			&pet.ID,
			&pet.Name,
			&pet.Species,
			&pet.Breed,
			&pet.OwnerID,
			&pet.CreatedAt,
			&pet.UpdatedAt,
		); err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}
	return pets, rows.Err()
}

func (r *petRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
