package domain

import "time"

// Client is a pet owner who books services.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
