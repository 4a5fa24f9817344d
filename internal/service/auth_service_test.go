package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/config"
	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/service"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

type stubTouristRepo struct {
	byID    map[string]*domain.Tourist
	byEmail map[string]*domain.Tourist
	touched chan string
	nextID  int
}

func newStubTouristRepo() *stubTouristRepo {
	return &stubTouristRepo{
		byID:    map[string]*domain.Tourist{},
		byEmail: map[string]*domain.Tourist{},
		touched: make(chan string, 8),
	}
}

func (r *stubTouristRepo) Create(_ context.Context, tourist *domain.Tourist) error {
	if _, exists := r.byEmail[tourist.Email]; exists {
		return apperrors.NewDuplicateIdentifier("email")
	}
	r.nextID++
	tourist.ID = fmt.Sprintf("tourist-%d", r.nextID)
	tourist.CreatedAt = time.Now()
	tourist.UpdatedAt = tourist.CreatedAt
	r.byID[tourist.ID] = tourist
	r.byEmail[tourist.Email] = tourist
	return nil
}

func (r *stubTouristRepo) Update(_ context.Context, tourist *domain.Tourist) error {
	if _, exists := r.byID[tourist.ID]; !exists {
		return pgx.ErrNoRows
	}
	r.byID[tourist.ID] = tourist
	r.byEmail[tourist.Email] = tourist
	return nil
}

func (r *stubTouristRepo) GetByID(_ context.Context, id string) (*domain.Tourist, error) {
	tourist, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return tourist, nil
}

func (r *stubTouristRepo) GetByEmail(_ context.Context, email string) (*domain.Tourist, error) {
	tourist, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return tourist, nil
}

func (r *stubTouristRepo) TouchLastSeen(_ context.Context, id string) error {
	r.touched <- id
	return nil
}

type stubBusinessAdminRepo struct {
	byID    map[string]*domain.BusinessAdmin
	byEmail map[string]*domain.BusinessAdmin
}

func newStubBusinessAdminRepo() *stubBusinessAdminRepo {
	return &stubBusinessAdminRepo{
		byID:    map[string]*domain.BusinessAdmin{},
		byEmail: map[string]*domain.BusinessAdmin{},
	}
}

func (r *stubBusinessAdminRepo) add(admin *domain.BusinessAdmin) {
	r.byID[admin.ID] = admin
	r.byEmail[admin.Email] = admin
}

func (r *stubBusinessAdminRepo) Create(_ context.Context, admin *domain.BusinessAdmin) error {
	if _, exists := r.byEmail[admin.Email]; exists {
		return apperrors.NewDuplicateIdentifier("email")
	}
	admin.ID = fmt.Sprintf("admin-%d", len(r.byID)+1)
	r.add(admin)
	return nil
}

func (r *stubBusinessAdminRepo) GetByID(_ context.Context, id string) (*domain.BusinessAdmin, error) {
	admin, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *stubBusinessAdminRepo) GetByEmail(_ context.Context, email string) (*domain.BusinessAdmin, error) {
	admin, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *stubBusinessAdminRepo) SetStatus(_ context.Context, id string, status domain.AccountStatus) error {
	admin, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.Status = status
	return nil
}

func (r *stubBusinessAdminRepo) UpdatePassword(_ context.Context, id, hash string) error {
	admin, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.PasswordHash = hash
	return nil
}

func (r *stubBusinessAdminRepo) TouchLastSeen(_ context.Context, _ string) error { return nil }

type stubSuperAdminRepo struct {
	byID       map[string]*domain.SuperAdmin
	byUsername map[string]*domain.SuperAdmin
}

func newStubSuperAdminRepo() *stubSuperAdminRepo {
	return &stubSuperAdminRepo{
		byID:       map[string]*domain.SuperAdmin{},
		byUsername: map[string]*domain.SuperAdmin{},
	}
}

func (r *stubSuperAdminRepo) add(admin *domain.SuperAdmin) {
	r.byID[admin.ID] = admin
	r.byUsername[admin.Username] = admin
}

func (r *stubSuperAdminRepo) GetByID(_ context.Context, id string) (*domain.SuperAdmin, error) {
	admin, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *stubSuperAdminRepo) GetByUsername(_ context.Context, username string) (*domain.SuperAdmin, error) {
	admin, ok := r.byUsername[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return admin, nil
}

func (r *stubSuperAdminRepo) UpdatePassword(_ context.Context, id, hash string) error {
	admin, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.PasswordHash = hash
	return nil
}

func (r *stubSuperAdminRepo) TouchLastSeen(_ context.Context, _ string) error { return nil }

type authFixture struct {
	svc      *service.AuthService
	tourists *stubTouristRepo
	admins   *stubBusinessAdminRepo
	supers   *stubSuperAdminRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.BcryptCost = auth.MinBcryptCost

	tourists := newStubTouristRepo()
	admins := newStubBusinessAdminRepo()
	supers := newStubSuperAdminRepo()
	svc := service.NewAuthService(cfg, service.AuthDependencies{
		TouristRepo:       tourists,
		BusinessAdminRepo: admins,
		SuperAdminRepo:    supers,
	}, zap.NewNop())
	return &authFixture{svc: svc, tourists: tourists, admins: admins, supers: supers}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, auth.MinBcryptCost)
	require.NoError(t, err)
	return hash
}

func TestRegisterTouristThenDuplicate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tourist, err := f.svc.RegisterTourist(ctx, "Ada", "Byron", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, tourist.ID)
	require.Equal(t, domain.AccountStatusActive, tourist.Status)

	_, err = f.svc.RegisterTourist(ctx, "Ada", "Byron", "a@x.com", "secret2")
	require.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateIdentifier), "got %v", err)
}

func TestLoginTourist(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.svc.RegisterTourist(ctx, "Ada", "Byron", "a@x.com", "secret1")
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, _, _, err = f.svc.LoginTourist(ctx, "a@x.com", "wrongpass")
	require.True(t, apperrors.HasCode(err, apperrors.CodeInvalidCredentials), "got %v", err)
	_, _, _, err = f.svc.LoginTourist(ctx, "nobody@x.com", "secret1")
	require.True(t, apperrors.HasCode(err, apperrors.CodeInvalidCredentials), "got %v", err)

	tourist, token, expiresAt, err := f.svc.LoginTourist(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, registered.ID, tourist.ID)
	require.WithinDuration(t, time.Now().Add(auth.TokenTTL), expiresAt, 5*time.Second)

	claims, err := f.svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleTourist, claims.Role)
	require.Equal(t, registered.ID, claims.Subject)
}

func TestLoginInactiveAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.admins.add(&domain.BusinessAdmin{
		ID:           "admin-1",
		Email:        "ops@biz.com",
		PasswordHash: mustHash(t, "secret1"),
		Status:       domain.AccountStatusInactive,
		BusinessID:   "biz-5",
	})

	// Correct password, inactive account: distinct from bad credentials.
	_, _, _, err := f.svc.LoginBusinessAdmin(ctx, "ops@biz.com", "secret1")
	require.True(t, apperrors.HasCode(err, apperrors.CodeInactiveAccount), "got %v", err)
}

func TestLoginBusinessAdminScopeClaim(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.admins.add(&domain.BusinessAdmin{
		ID:           "admin-1",
		Email:        "ops@biz.com",
		PasswordHash: mustHash(t, "secret1"),
		Status:       domain.AccountStatusActive,
		BusinessID:   "biz-5",
	})

	_, token, _, err := f.svc.LoginBusinessAdmin(ctx, "ops@biz.com", "secret1")
	require.NoError(t, err)

	claims, err := f.svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleBusinessAdmin, claims.Role)
	require.Equal(t, "biz-5", claims.BusinessID)
}

func TestLoginSuperAdminAccessLevelClaim(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.supers.add(&domain.SuperAdmin{
		ID:           "root-1",
		Username:     "root",
		PasswordHash: mustHash(t, "secret1"),
		Status:       domain.AccountStatusActive,
		AccessLevel:  3,
	})

	_, token, _, err := f.svc.LoginSuperAdmin(ctx, "root", "secret1")
	require.NoError(t, err)

	claims, err := f.svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuperAdmin, claims.Role)
	require.Equal(t, 3, claims.AccessLevel)
}

func TestLoginCorruptDigest(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.admins.add(&domain.BusinessAdmin{
		ID:           "admin-1",
		Email:        "ops@biz.com",
		PasswordHash: "not-a-bcrypt-digest",
		Status:       domain.AccountStatusActive,
		BusinessID:   "biz-5",
	})

	_, _, _, err := f.svc.LoginBusinessAdmin(ctx, "ops@biz.com", "secret1")
	require.True(t, apperrors.HasCode(err, apperrors.CodeCorruptDigest), "got %v", err)
}

func TestLoginTouchesLastSeen(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.svc.RegisterTourist(ctx, "Ada", "Byron", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, _, err = f.svc.LoginTourist(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	select {
	case id := <-f.tourists.touched:
		require.Equal(t, registered.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("last seen update never fired")
	}
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.svc.RegisterTourist(ctx, "Ada", "Byron", "a@x.com", "secret1")
	require.NoError(t, err)
	caller := &auth.Principal{ID: registered.ID, Role: domain.RoleTourist}

	err = f.svc.ChangePassword(ctx, caller, "wrongpass", "secret2")
	require.True(t, apperrors.HasCode(err, apperrors.CodeInvalidCredentials), "got %v", err)

	require.NoError(t, f.svc.ChangePassword(ctx, caller, "secret1", "secret2"))

	_, _, _, err = f.svc.LoginTourist(ctx, "a@x.com", "secret1")
	require.True(t, apperrors.HasCode(err, apperrors.CodeInvalidCredentials), "got %v", err)
	_, _, _, err = f.svc.LoginTourist(ctx, "a@x.com", "secret2")
	require.NoError(t, err)
}
