package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/tourism-service/internal/domain"
)

// SuperAdminRepository defines persistence access for platform operators.
// Super admin accounts are provisioned out of band (seed migration), so
// there is no Create here.
type SuperAdminRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SuperAdmin, error)
	GetByUsername(ctx context.Context, username string) (*domain.SuperAdmin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastSeen(ctx context.Context, id string) error
}

type superAdminRepository struct {
	pool *pgxpool.Pool
}

// NewSuperAdminRepository returns a Postgres-backed implementation.
func NewSuperAdminRepository(pool *pgxpool.Pool) SuperAdminRepository {
	return &superAdminRepository{pool: pool}
}

func (r *superAdminRepository) GetByID(ctx context.Context, id string) (*domain.SuperAdmin, error) {
	const query = `
        SELECT id, username, password_hash, status, access_level, permissions, last_seen_at, created_at, updated_at
        FROM super_admins WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *superAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.SuperAdmin, error) {
	const query = `
        SELECT id, username, password_hash, status, access_level, permissions, last_seen_at, created_at, updated_at
        FROM super_admins WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *superAdminRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.SuperAdmin, error) {
	var admin domain.SuperAdmin
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.Status,
		&admin.AccessLevel,
		&admin.Permissions,
		&admin.LastSeenAt,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, mapStoreError(err, "")
	}
	return &admin, nil
}

func (r *superAdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE super_admins SET password_hash=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return mapStoreError(err, "")
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *superAdminRepository) TouchLastSeen(ctx context.Context, id string) error {
	const query = `UPDATE super_admins SET last_seen_at=NOW() WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	return mapStoreError(err, "")
}
