package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
	"github.com/andrewserrazina/friendly-paws-backend/internal/events"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

type fakeClientRepo struct {
	clients map[string]domain.Client
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) error {
	f.clients[client.ID] = *client
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	client, exists := f.clients[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return &client, nil
}

func (f *fakeClientRepo) List(_ context.Context, limit, offset int) ([]domain.Client, error) {
	return nil, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	if _, exists := f.clients[id]; !exists {
		return pgx.ErrNoRows
	}
	delete(f.clients, id)
	return nil
}

type fakePetRepo struct {
	pets map[string]domain.Pet
}

func (f *fakePetRepo) Create(_ context.Context, pet *domain.Pet) error {
	f.pets[pet.ID] = *pet
	return nil
}

func (f *fakePetRepo) GetByID(_ context.Context, id string) (*domain.Pet, error) {
	pet, exists := f.pets[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return &pet, nil
}

func (f *fakePetRepo) List(_ context.Context, ownerID *string, limit, offset int) ([]domain.Pet, error) {
	return nil, nil
}

func (f *fakePetRepo) Delete(_ context.Context, id string) error {
	if _, exists := f.pets[id]; !exists {
		return pgx.ErrNoRows
	}
	delete(f.pets, id)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]domain.Booking
	nextID   int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	booking.ID = fmt.Sprintf("booking-%d", f.nextID)
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, exists := f.bookings[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return &booking, nil
}

func (f *fakeBookingRepo) List(_ context.Context, clientID *string, limit, offset int) ([]domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.bookings[id]; !exists {
		return pgx.ErrNoRows
	}
	delete(f.bookings, id)
	return nil
}

func newBookingFixture() (*BookingService, *fakeBookingRepo, events.Dispatcher) {
	clientRepo := &fakeClientRepo{clients: map[string]domain.Client{
		"client-1": {ID: "client-1", Name: "Dana", Email: "dana@example.com"},
	}}
	petRepo := &fakePetRepo{pets: map[string]domain.Pet{
		"pet-1": {ID: "pet-1", Name: "Rex", Species: "dog", OwnerID: "client-1"},
		"pet-2": {ID: "pet-2", Name: "Mia", Species: "cat", OwnerID: "client-2"},
	}}
	bookingRepo := &fakeBookingRepo{bookings: make(map[string]domain.Booking)}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewBookingService(BookingDependencies{
		BookingRepo: bookingRepo,
		ClientRepo:  clientRepo,
		PetRepo:     petRepo,
		Dispatcher:  dispatcher,
	})
	return svc, bookingRepo, dispatcher
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults to pending and publishes event", func(t *testing.T) {
		svc, _, dispatcher := newBookingFixture()

		var published []events.Event
		dispatcher.Subscribe(events.EventBookingCreated, func(_ context.Context, e events.Event) error {
			published = append(published, e)
			return nil
		})

		booking, err := svc.CreateBooking(ctx, BookingCreateInput{
			ClientID: "client-1", PetID: "pet-1",
			Service: "dog walking", Date: "2026-09-15",
		})
		if err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}
		if booking.Status != domain.BookingStatusPending {
			t.Errorf("Status = %q, want PENDING", booking.Status)
		}
		if len(published) != 1 {
			t.Fatalf("published %d events, want 1", len(published))
		}
		if published[0].Subject != booking.ID {
			t.Errorf("event subject = %q, want %q", published[0].Subject, booking.ID)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		svc, _, _ := newBookingFixture()
		_, err := svc.CreateBooking(ctx, BookingCreateInput{
			ClientID: "nobody", PetID: "pet-1", Service: "walk", Date: "2026-09-15",
		})
		var de *apperrors.DomainError
		if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
			t.Errorf("error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("pet owned by someone else", func(t *testing.T) {
		svc, _, _ := newBookingFixture()
		_, err := svc.CreateBooking(ctx, BookingCreateInput{
			ClientID: "client-1", PetID: "pet-2", Service: "walk", Date: "2026-09-15",
		})
		var de *apperrors.DomainError
		if !errors.As(err, &de) || de.Code != "VALIDATION_FAILED" {
			t.Errorf("error = %v, want VALIDATION_FAILED", err)
		}
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	svc, repo, dispatcher := newBookingFixture()

	booking, err := svc.CreateBooking(ctx, BookingCreateInput{
		ClientID: "client-1", PetID: "pet-1", Service: "boarding", Date: "2026-10-01",
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	var cancelled []events.Event
	dispatcher.Subscribe(events.EventBookingCancelled, func(_ context.Context, e events.Event) error {
		cancelled = append(cancelled, e)
		return nil
	})

	if err := svc.DeleteBooking(ctx, booking.ID); err != nil {
		t.Fatalf("DeleteBooking() error = %v", err)
	}
	if _, exists := repo.bookings[booking.ID]; exists {
		t.Error("booking still present after delete")
	}
	if len(cancelled) != 1 {
		t.Errorf("published %d cancel events, want 1", len(cancelled))
	}

	err = svc.DeleteBooking(ctx, booking.ID)
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
		t.Errorf("second delete error = %v, want NOT_FOUND", err)
	}
}
