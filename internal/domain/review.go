package domain

import "time"

// Review is a tourist's rating of a business.
type Review struct {
	ID         string
	BusinessID string
	TouristID  string
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
