package domain

import "time"

// Pet belongs to a client.
type Pet struct {
	ID        string
	Name      string
	Species   string
	Breed     *string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
