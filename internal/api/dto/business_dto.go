package dto

import (
	"time"

	"github.com/voyago/tourism-service/internal/domain"
)

// BusinessRequest payload for creating or updating a business listing.
type BusinessRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
}

// BusinessResponse is the public shape of a business listing.
type BusinessResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBusinessResponse maps the domain model.
func NewBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Category:    b.Category,
		Address:     b.Address,
		City:        b.City,
		Phone:       b.Phone,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// NewBusinessListResponse maps a page of listings.
func NewBusinessListResponse(businesses []domain.Business) []BusinessResponse {
	out := make([]BusinessResponse, 0, len(businesses))
	for i := range businesses {
		out = append(out, NewBusinessResponse(&businesses[i]))
	}
	return out
}
