package domain

import "time"

// BusinessAdmin models an operator account bound to exactly one business.
// BusinessID is the scope every mutation by this principal is checked against.
type BusinessAdmin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       AccountStatus
	BusinessID   string
	Permissions  []string
	LastSeenAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
