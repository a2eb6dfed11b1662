package events

import (
	"time"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
	EventClientDeleted    EventType = "client_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	ClientID string               `json:"client_id"`
	PetID    string               `json:"pet_id"`
	Service  string               `json:"service"`
	Date     string               `json:"date"`
	Status   domain.BookingStatus `json:"status"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	ClientID string `json:"client_id"`
	PetID    string `json:"pet_id"`
	Service  string `json:"service"`
	Date     string `json:"date"`
}

// ClientDeletedPayload payload.
type ClientDeletedPayload struct {
	Email string `json:"email"`
}
