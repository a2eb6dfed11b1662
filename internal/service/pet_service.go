package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/repository"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// PetService coordinates pet record workflows.
type PetService struct {
	pets    repository.PetRepository
	clients repository.ClientRepository
}

// NewPetService builds the service.
func NewPetService(pets repository.PetRepository, clients repository.ClientRepository) *PetService {
	return &PetService{pets: pets, clients: clients}
}

// PetCreateInput describes pet creation payload.
type PetCreateInput struct {
	Name    string
	Species string
	Breed   *string
	OwnerID string
}

// CreatePet stores a new pet after verifying the owner exists.
func (s *PetService) CreatePet(ctx context.Context, input PetCreateInput) (*domain.Pet, error) {
	if _, err := s.clients.GetByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": input.OwnerID})
		}
		return nil, err
	}

	pet := &domain.Pet{
		Name:    input.Name,
		Species: input.Species,
		Breed:   input.Breed,
		OwnerID: input.OwnerID,
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// GetPet fetches a pet by id.
func (s *PetService) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	pet, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("pet", map[string]any{"id": id})
		}
		return nil, err
	}
	return pet, nil
}

// ListPets returns pets, optionally filtered by owner.
func (s *PetService) ListPets(ctx context.Context, ownerID *string, limit, offset int) ([]domain.Pet, error) {
	return s.pets.List(ctx, ownerID, limit, offset)
}

// DeletePet removes a pet record.
func (s *PetService) DeletePet(ctx context.Context, id string) error {
	if err := s.pets.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("pet", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
