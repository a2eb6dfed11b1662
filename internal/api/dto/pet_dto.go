package dto

import "time"

// CreatePetRequest payload.
type CreatePetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"`
	OwnerID string  `json:"owner_id"`
}

// PetResponse response.
type PetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
