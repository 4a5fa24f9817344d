package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/tourism-service/internal/domain"
)

// BusinessAdminRepository defines persistence access for business admins.
type BusinessAdminRepository interface {
	Create(ctx context.Context, admin *domain.BusinessAdmin) error
	GetByID(ctx context.Context, id string) (*domain.BusinessAdmin, error)
	GetByEmail(ctx context.Context, email string) (*domain.BusinessAdmin, error)
	SetStatus(ctx context.Context, id string, status domain.AccountStatus) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastSeen(ctx context.Context, id string) error
}

type businessAdminRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessAdminRepository returns a Postgres-backed implementation.
func NewBusinessAdminRepository(pool *pgxpool.Pool) BusinessAdminRepository {
	return &businessAdminRepository{pool: pool}
}

func (r *businessAdminRepository) Create(ctx context.Context, admin *domain.BusinessAdmin) error {
	const query = `
        INSERT INTO business_admins (name, email, password_hash, status, business_id, permissions)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Status,
		admin.BusinessID,
		admin.Permissions,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	return mapStoreError(err, "email")
}

func (r *businessAdminRepository) GetByID(ctx context.Context, id string) (*domain.BusinessAdmin, error) {
	const query = `
        SELECT id, name, email, password_hash, status, business_id, permissions, last_seen_at, created_at, updated_at
        FROM business_admins WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *businessAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.BusinessAdmin, error) {
	const query = `
        SELECT id, name, email, password_hash, status, business_id, permissions, last_seen_at, created_at, updated_at
        FROM business_admins WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *businessAdminRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.BusinessAdmin, error) {
	var admin domain.BusinessAdmin
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Status,
		&admin.BusinessID,
		&admin.Permissions,
		&admin.LastSeenAt,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, mapStoreError(err, "")
	}
	return &admin, nil
}

func (r *businessAdminRepository) SetStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	const query = `UPDATE business_admins SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return mapStoreError(err, "")
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *businessAdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE business_admins SET password_hash=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return mapStoreError(err, "")
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *businessAdminRepository) TouchLastSeen(ctx context.Context, id string) error {
	const query = `UPDATE business_admins SET last_seen_at=NOW() WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	return mapStoreError(err, "")
}
