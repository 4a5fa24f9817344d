package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/config"
	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/repository"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

const lastSeenTimeout = 5 * time.Second

// AuthService coordinates login and registration for all principal kinds.
//
// Every login runs the same gauntlet: lookup, status gate, digest compare,
// token mint. The check order is deliberate — an unknown identifier and a
// wrong password produce the same caller-visible error, while a correct
// password on a deactivated account is reported distinctly.
type AuthService struct {
	tourists   repository.TouristRepository
	admins     repository.BusinessAdminRepository
	supers     repository.SuperAdminRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	TouristRepo       repository.TouristRepository
	BusinessAdminRepo repository.BusinessAdminRepository
	SuperAdminRepo    repository.SuperAdminRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		tourists:   deps.TouristRepo,
		admins:     deps.BusinessAdminRepo,
		supers:     deps.SuperAdminRepo,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// RegisterTourist creates a new tourist account with status active. The
// email pre-check gives the friendly duplicate error; the insert's unique
// constraint covers the race between check and insert.
func (s *AuthService) RegisterTourist(ctx context.Context, firstName, lastName, email, password string) (*domain.Tourist, error) {
	if _, err := s.tourists.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateIdentifier("email")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	tourist := &domain.Tourist{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Status:       domain.AccountStatusActive,
	}
	if err := s.tourists.Create(ctx, tourist); err != nil {
		return nil, err
	}
	return tourist, nil
}

// LoginTourist authenticates a tourist by email.
func (s *AuthService) LoginTourist(ctx context.Context, email, password string) (*domain.Tourist, string, time.Time, error) {
	tourist, err := s.tourists.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, loginLookupError(err)
	}
	if err := checkLoginable(tourist.Status, tourist.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.GenerateToken(auth.Principal{ID: tourist.ID, Role: domain.RoleTourist})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.touchLastSeen(domain.RoleTourist, tourist.ID)
	return tourist, token, exp, nil
}

// LoginBusinessAdmin authenticates a business admin by email. The issued
// token carries the owning business id as its scoping claim.
func (s *AuthService) LoginBusinessAdmin(ctx context.Context, email, password string) (*domain.BusinessAdmin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, loginLookupError(err)
	}
	if err := checkLoginable(admin.Status, admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.GenerateToken(auth.Principal{
		ID:         admin.ID,
		Role:       domain.RoleBusinessAdmin,
		BusinessID: admin.BusinessID,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.touchLastSeen(domain.RoleBusinessAdmin, admin.ID)
	return admin, token, exp, nil
}

// LoginSuperAdmin authenticates a platform operator by login handle. The
// issued token carries the access level as its scoping claim.
func (s *AuthService) LoginSuperAdmin(ctx context.Context, username, password string) (*domain.SuperAdmin, string, time.Time, error) {
	admin, err := s.supers.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", time.Time{}, loginLookupError(err)
	}
	if err := checkLoginable(admin.Status, admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.GenerateToken(auth.Principal{
		ID:          admin.ID,
		Role:        domain.RoleSuperAdmin,
		AccessLevel: admin.AccessLevel,
	})
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.touchLastSeen(domain.RoleSuperAdmin, admin.ID)
	return admin, token, exp, nil
}

// ChangePassword verifies the current password before storing a new hash.
// Works for any principal kind.
func (s *AuthService) ChangePassword(ctx context.Context, caller *auth.Principal, currentPassword, newPassword string) error {
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	switch caller.Role {
	case domain.RoleTourist:
		tourist, err := s.tourists.GetByID(ctx, caller.ID)
		if err != nil {
			return loginLookupError(err)
		}
		if err := verifyCurrent(tourist.PasswordHash, currentPassword); err != nil {
			return err
		}
		tourist.PasswordHash = hash
		return s.tourists.Update(ctx, tourist)
	case domain.RoleBusinessAdmin:
		admin, err := s.admins.GetByID(ctx, caller.ID)
		if err != nil {
			return loginLookupError(err)
		}
		if err := verifyCurrent(admin.PasswordHash, currentPassword); err != nil {
			return err
		}
		return s.admins.UpdatePassword(ctx, admin.ID, hash)
	case domain.RoleSuperAdmin:
		admin, err := s.supers.GetByID(ctx, caller.ID)
		if err != nil {
			return loginLookupError(err)
		}
		if err := verifyCurrent(admin.PasswordHash, currentPassword); err != nil {
			return err
		}
		return s.supers.UpdatePassword(ctx, admin.ID, hash)
	default:
		return apperrors.NewUnauthenticated("unknown principal role")
	}
}

// TokenManager exposes the underlying token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// touchLastSeen records login activity without blocking or failing the
// login. Observability, not correctness: errors are logged and dropped.
func (s *AuthService) touchLastSeen(role domain.Role, id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lastSeenTimeout)
		defer cancel()

		var err error
		switch role {
		case domain.RoleTourist:
			err = s.tourists.TouchLastSeen(ctx, id)
		case domain.RoleBusinessAdmin:
			err = s.admins.TouchLastSeen(ctx, id)
		case domain.RoleSuperAdmin:
			err = s.supers.TouchLastSeen(ctx, id)
		}
		if err != nil && s.logger != nil {
			s.logger.Debug("last seen update failed",
				zap.String("role", string(role)),
				zap.String("principal_id", id),
				zap.Error(err))
		}
	}()
}

// loginLookupError hides whether the identifier exists: a missing row reads
// exactly like a wrong password.
func loginLookupError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewInvalidCredentials()
	}
	return err
}

// checkLoginable runs the status gate and digest compare in that order.
func checkLoginable(status domain.AccountStatus, passwordHash, password string) error {
	if status != domain.AccountStatusActive {
		return apperrors.NewInactiveAccount()
	}
	return verifyCurrent(passwordHash, password)
}

func verifyCurrent(passwordHash, password string) error {
	switch err := auth.ComparePassword(passwordHash, password); {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrCorruptDigest):
		return apperrors.NewCorruptDigest(err)
	default:
		return apperrors.NewInvalidCredentials()
	}
}
