package dto

import (
	"time"

	"github.com/voyago/tourism-service/internal/domain"
)

// BusinessAdminCreateRequest payload for provisioning a business admin.
type BusinessAdminCreateRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	BusinessID  string   `json:"business_id"`
	Permissions []string `json:"permissions"`
}

// BusinessAdminResponse is the public shape of a business admin account.
type BusinessAdminResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Status      domain.AccountStatus `json:"status"`
	BusinessID  string               `json:"business_id"`
	Permissions []string             `json:"permissions"`
	CreatedAt   time.Time            `json:"created_at"`
}

// NewBusinessAdminResponse maps the domain model, dropping credentials.
func NewBusinessAdminResponse(a *domain.BusinessAdmin) BusinessAdminResponse {
	return BusinessAdminResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Status:      a.Status,
		BusinessID:  a.BusinessID,
		Permissions: a.Permissions,
		CreatedAt:   a.CreatedAt,
	}
}
