package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/repository"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// AdminService provisions business admin accounts. All operations here are
// reached only through super-admin-gated routes; creation is deliberately
// not a public registration.
type AdminService struct {
	admins     repository.BusinessAdminRepository
	businesses repository.BusinessRepository
	bcryptCost int
}

// NewAdminService builds the service.
func NewAdminService(admins repository.BusinessAdminRepository, businesses repository.BusinessRepository, bcryptCost int) *AdminService {
	return &AdminService{admins: admins, businesses: businesses, bcryptCost: bcryptCost}
}

// CreateBusinessAdmin provisions an admin account bound to a business.
func (s *AdminService) CreateBusinessAdmin(ctx context.Context, name, email, password, businessID string, permissions []string) (*domain.BusinessAdmin, error) {
	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("business")
		}
		return nil, err
	}
	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateIdentifier("email")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.BusinessAdmin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       domain.AccountStatusActive,
		BusinessID:   businessID,
		Permissions:  permissions,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// DeactivateBusinessAdmin flips the account to inactive. Outstanding
// tokens stay valid until expiry unless the route chains the revalidator.
func (s *AdminService) DeactivateBusinessAdmin(ctx context.Context, adminID string) error {
	if err := s.admins.SetStatus(ctx, adminID, domain.AccountStatusInactive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("business admin")
		}
		return err
	}
	return nil
}
