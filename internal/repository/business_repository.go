package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/tourism-service/internal/domain"
)

// BusinessFilter captures public listing parameters.
type BusinessFilter struct {
	City       *string
	Category   *string
	SearchTerm *string
	Limit      int
	Offset     int
}

// BusinessRepository encapsulates business persistence.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	Update(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context, filter BusinessFilter) ([]domain.Business, error)
}

type businessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository instantiates the repository.
func NewBusinessRepository(pool *pgxpool.Pool) BusinessRepository {
	return &businessRepository{pool: pool}
}

func (r *businessRepository) Create(ctx context.Context, business *domain.Business) error {
	const query = `
        INSERT INTO businesses (name, description, category, address, city, phone)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		business.Name,
		business.Description,
		business.Category,
		business.Address,
		business.City,
		business.Phone,
	).Scan(&business.ID, &business.CreatedAt, &business.UpdatedAt)
	return mapStoreError(err, "")
}

func (r *businessRepository) Update(ctx context.Context, business *domain.Business) error {
	const query = `
        UPDATE businesses SET name=$1, description=$2, category=$3, address=$4, city=$5, phone=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		business.Name,
		business.Description,
		business.Category,
		business.Address,
		business.City,
		business.Phone,
		business.ID,
	)
	if err != nil {
		return mapStoreError(err, "")
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	const query = `
        SELECT id, name, description, category, address, city, phone, created_at, updated_at
        FROM businesses WHERE id=$1`
	var business domain.Business
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&business.ID,
		&business.Name,
		&business.Description,
		&business.Category,
		&business.Address,
		&business.City,
		&business.Phone,
		&business.CreatedAt,
		&business.UpdatedAt,
	); err != nil {
		return nil, mapStoreError(err, "")
	}
	return &business, nil
}

func (r *businessRepository) List(ctx context.Context, filter BusinessFilter) ([]domain.Business, error) {
	base := `SELECT id, name, description, category, address, city, phone, created_at, updated_at
             FROM businesses`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.City != nil {
		args = append(args, *filter.City)
		clauses = append(clauses, fmt.Sprintf("city=$%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY name ASC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreError(err, "")
	}
	defer rows.Close()
	return scanBusinesses(rows)
}

func scanBusinesses(rows pgx.Rows) ([]domain.Business, error) {
	var result []domain.Business
	for rows.Next() {
		var business domain.Business
		if err := rows.Scan(
			&business.ID,
			&business.Name,
			&business.Description,
			&business.Category,
			&business.Address,
			&business.City,
			&business.Phone,
			&business.CreatedAt,
			&business.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, business)
	}
	return result, rows.Err()
}
