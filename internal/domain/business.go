package domain

import "time"

// Business is a listed establishment on the platform (hotel, restaurant,
// tour operator and so on).
type Business struct {
	ID          string
	Name        string
	Description string
	Category    string
	Address     string
	City        string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
