package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/tourism-service/internal/domain"
)

// TouristRepository defines persistence access for tourist accounts.
type TouristRepository interface {
	Create(ctx context.Context, tourist *domain.Tourist) error
	Update(ctx context.Context, tourist *domain.Tourist) error
	GetByID(ctx context.Context, id string) (*domain.Tourist, error)
	GetByEmail(ctx context.Context, email string) (*domain.Tourist, error)
	TouchLastSeen(ctx context.Context, id string) error
}

type touristRepository struct {
	pool *pgxpool.Pool
}

// NewTouristRepository returns a Postgres-backed implementation.
func NewTouristRepository(pool *pgxpool.Pool) TouristRepository {
	return &touristRepository{pool: pool}
}

func (r *touristRepository) Create(ctx context.Context, tourist *domain.Tourist) error {
	const query = `
        INSERT INTO tourists (first_name, last_name, email, password_hash, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		tourist.FirstName,
		tourist.LastName,
		tourist.Email,
		tourist.PasswordHash,
		tourist.Status,
	).Scan(&tourist.ID, &tourist.CreatedAt, &tourist.UpdatedAt)
	return mapStoreError(err, "email")
}

func (r *touristRepository) Update(ctx context.Context, tourist *domain.Tourist) error {
	const query = `
        UPDATE tourists SET first_name=$1, last_name=$2, email=$3, password_hash=$4, status=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		tourist.FirstName,
		tourist.LastName,
		tourist.Email,
		tourist.PasswordHash,
		tourist.Status,
		tourist.ID,
	)
	if err != nil {
		return mapStoreError(err, "email")
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *touristRepository) GetByID(ctx context.Context, id string) (*domain.Tourist, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, status, last_seen_at, created_at, updated_at
        FROM tourists WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *touristRepository) GetByEmail(ctx context.Context, email string) (*domain.Tourist, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, status, last_seen_at, created_at, updated_at
        FROM tourists WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *touristRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Tourist, error) {
	var tourist domain.Tourist
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&tourist.ID,
		&tourist.FirstName,
		&tourist.LastName,
		&tourist.Email,
		&tourist.PasswordHash,
		&tourist.Status,
		&tourist.LastSeenAt,
		&tourist.CreatedAt,
		&tourist.UpdatedAt,
	); err != nil {
		return nil, mapStoreError(err, "")
	}
	return &tourist, nil
}

func (r *touristRepository) TouchLastSeen(ctx context.Context, id string) error {
	const query = `UPDATE tourists SET last_seen_at=NOW() WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	return mapStoreError(err, "")
}
