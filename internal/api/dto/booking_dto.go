package dto

import (
	"time"

	"github.com/andrewserrazina/friendly-paws-backend/internal/domain"
)

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	ClientID string `json:"client_id"`
	PetID    string `json:"pet_id"`
	Service  string `json:"service"`
	Date     string `json:"date"`
}

// BookingResponse response.
type BookingResponse struct {
	ID        string               `json:"id"`
	ClientID  string               `json:"client_id"`
	PetID     string               `json:"pet_id"`
	Service   string               `json:"service"`
	Date      string               `json:"date"`
	Status    domain.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
