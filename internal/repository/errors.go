package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/voyago/tourism-service/pkg/util"
)

const uniqueViolationCode = "23505"

// mapStoreError normalizes driver errors so no pgx-specific type escapes
// the repository layer. pgx.ErrNoRows passes through untouched: callers
// decide whether a missing row is "invalid credentials" or "not found".
// identifier names the unique column for duplicate mapping ("" when the
// statement writes no unique column).
func mapStoreError(err error, identifier string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && identifier != "" {
		return apperrors.NewDuplicateIdentifier(identifier)
	}
	return apperrors.NewUpstreamUnavailable(err)
}
