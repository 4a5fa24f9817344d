package dto

import (
	"time"

	"github.com/voyago/tourism-service/internal/domain"
)

// TouristProfileResponse is the public shape of a tourist account.
type TouristProfileResponse struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	LastSeen  *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TouristProfileUpdateRequest payload for profile edits.
type TouristProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewTouristProfileResponse maps the domain model, dropping credentials.
func NewTouristProfileResponse(t *domain.Tourist) TouristProfileResponse {
	return TouristProfileResponse{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		LastSeen:  t.LastSeenAt,
		CreatedAt: t.CreatedAt,
	}
}
