package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/repository"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// BusinessInput carries create/update fields for a business listing.
type BusinessInput struct {
	Name        string
	Description string
	Category    string
	Address     string
	City        string
	Phone       string
}

// BusinessService manages business listings. Creation is a super-admin
// operation; updates additionally pass the ownership check so a business
// admin can only touch its own listing.
type BusinessService struct {
	businesses repository.BusinessRepository
}

// NewBusinessService builds the service.
func NewBusinessService(businesses repository.BusinessRepository) *BusinessService {
	return &BusinessService{businesses: businesses}
}

// Create registers a new business listing.
func (s *BusinessService) Create(ctx context.Context, in BusinessInput) (*domain.Business, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("business name is required", nil)
	}

	business := &domain.Business{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Address:     in.Address,
		City:        in.City,
		Phone:       in.Phone,
	}
	if err := s.businesses.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// Update mutates a listing after the caller passes the ownership check.
func (s *BusinessService) Update(ctx context.Context, caller *auth.Principal, businessID string, in BusinessInput) (*domain.Business, error) {
	if err := auth.CheckOwnership(caller, businessID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("business name is required", nil)
	}

	business, err := s.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	business.Name = in.Name
	business.Description = in.Description
	business.Category = in.Category
	business.Address = in.Address
	business.City = in.City
	business.Phone = in.Phone
	if err := s.businesses.Update(ctx, business); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("business")
		}
		return nil, err
	}
	return business, nil
}

// Get loads a single listing.
func (s *BusinessService) Get(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("business")
		}
		return nil, err
	}
	return business, nil
}

// List returns listings matching the public filter.
func (s *BusinessService) List(ctx context.Context, filter repository.BusinessFilter) ([]domain.Business, error) {
	return s.businesses.List(ctx, filter)
}
