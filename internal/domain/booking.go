package domain

import "time"

// BookingStatus represents lifecycle states for a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking links a client and one of their pets to a scheduled service.
type Booking struct {
	ID        string
	ClientID  string
	PetID     string
	Service   string
	Date      string
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
