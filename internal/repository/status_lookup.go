package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/voyago/tourism-service/internal/domain"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// StatusLookup resolves current account status across the three principal
// kinds. It backs the revalidation middleware's cache misses.
type StatusLookup struct {
	tourists TouristRepository
	admins   BusinessAdminRepository
	supers   SuperAdminRepository
}

// NewStatusLookup bundles the per-kind repositories.
func NewStatusLookup(tourists TouristRepository, admins BusinessAdminRepository, supers SuperAdminRepository) *StatusLookup {
	return &StatusLookup{tourists: tourists, admins: admins, supers: supers}
}

// AccountStatus returns the stored status for the principal. A principal
// that no longer exists reads as unauthenticated, the same as an invalid
// token would.
func (l *StatusLookup) AccountStatus(ctx context.Context, role domain.Role, id string) (domain.AccountStatus, error) {
	var status domain.AccountStatus
	var err error

	switch role {
	case domain.RoleTourist:
		var tourist *domain.Tourist
		if tourist, err = l.tourists.GetByID(ctx, id); err == nil {
			status = tourist.Status
		}
	case domain.RoleBusinessAdmin:
		var admin *domain.BusinessAdmin
		if admin, err = l.admins.GetByID(ctx, id); err == nil {
			status = admin.Status
		}
	case domain.RoleSuperAdmin:
		var admin *domain.SuperAdmin
		if admin, err = l.supers.GetByID(ctx, id); err == nil {
			status = admin.Status
		}
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewUnauthenticated("principal no longer exists")
		}
		return "", err
	}
	return status, nil
}
