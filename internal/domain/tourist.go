package domain

import "time"

// Tourist is the domain model for end-users who browse businesses and
// leave reviews.
type Tourist struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Status       AccountStatus
	LastSeenAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
