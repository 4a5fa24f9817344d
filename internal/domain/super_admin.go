package domain

import "time"

// SuperAdmin models a platform-wide operator. Super admins authenticate with
// a login handle rather than an email and are not scoped to any business.
type SuperAdmin struct {
	ID           string
	Username     string
	PasswordHash string
	Status       AccountStatus
	AccessLevel  int
	Permissions  []string
	LastSeenAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
