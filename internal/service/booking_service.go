package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/events"
	"github.com/andrewserrazina/friendly-paws-backend/internal/repository"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// BookingService coordinates booking workflows.
type BookingService struct {
	bookings   repository.BookingRepository
	clients    repository.ClientRepository
	pets       repository.PetRepository
	dispatcher events.Dispatcher
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	ClientRepo  repository.ClientRepository
	PetRepo     repository.PetRepository
	Dispatcher  events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		clients:    deps.ClientRepo,
		pets:       deps.PetRepo,
		dispatcher: deps.Dispatcher,
	}
}

// BookingCreateInput describes booking creation payload.
type BookingCreateInput struct {
	ClientID string
	PetID    string
	Service  string
	Date     string
}

// CreateBooking stores a booking after verifying both referenced
// records exist and the pet belongs to the client.
func (s *BookingService) CreateBooking(ctx context.Context, input BookingCreateInput) (*domain.Booking, error) {
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("client", map[string]any{"id": input.ClientID})
		}
		return nil, err
	}

	pet, err := s.pets.GetByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("pet", map[string]any{"id": input.PetID})
		}
		return nil, err
	}
	if pet.OwnerID != input.ClientID {
		return nil, apperrors.NewValidationError("pet does not belong to client", map[string]any{
			"pet_id":    input.PetID,
			"client_id": input.ClientID,
		})
	}

	booking := &domain.Booking{
		ClientID: input.ClientID,
		PetID:    input.PetID,
		Service:  input.Service,
		Date:     input.Date,
		Status:   domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingCreated,
			Subject:   booking.ID,
			Timestamp: time.Now(),
			Payload: events.BookingCreatedPayload{
				ClientID: booking.ClientID,
				PetID:    booking.PetID,
				Service:  booking.Service,
				Date:     booking.Date,
				Status:   booking.Status,
			},
		})
	}
	return booking, nil
}

// GetBooking fetches a booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"id": id})
		}
		return nil, err
	}
	return booking, nil
}

// ListBookings returns bookings, optionally filtered by client.
func (s *BookingService) ListBookings(ctx context.Context, clientID *string, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, clientID, limit, offset)
}

// DeleteBooking cancels and removes a booking.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("booking", map[string]any{"id": id})
		}
		return err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("booking", map[string]any{"id": id})
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingCancelled,
			Subject:   booking.ID,
			Timestamp: time.Now(),
			Payload: events.BookingCancelledPayload{
				ClientID: booking.ClientID,
				PetID:    booking.PetID,
				Service:  booking.Service,
				Date:     booking.Date,
			},
		})
	}
	return nil
}
