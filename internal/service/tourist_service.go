package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/repository"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// TouristService serves the authenticated tourist's own profile.
type TouristService struct {
	tourists repository.TouristRepository
}

// NewTouristService builds the service.
func NewTouristService(tourists repository.TouristRepository) *TouristService {
	return &TouristService{tourists: tourists}
}

// GetProfile loads the tourist's profile.
func (s *TouristService) GetProfile(ctx context.Context, touristID string) (*domain.Tourist, error) {
	tourist, err := s.tourists.GetByID(ctx, touristID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tourist")
		}
		return nil, err
	}
	return tourist, nil
}

// UpdateProfile changes display name fields. Email and status are not
// editable through the profile surface.
func (s *TouristService) UpdateProfile(ctx context.Context, touristID, firstName, lastName string) (*domain.Tourist, error) {
	tourist, err := s.GetProfile(ctx, touristID)
	if err != nil {
		return nil, err
	}

	tourist.FirstName = firstName
	tourist.LastName = lastName
	if err := s.tourists.Update(ctx, tourist); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("tourist")
		}
		return nil, err
	}
	return tourist, nil
}
