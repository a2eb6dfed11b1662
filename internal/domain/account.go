package domain

import "time"

// Account is the domain model for a login-capable account.
// Usernames are unique; matching is exact and case-sensitive.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
