package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"panomap/internal/repository"
)

// foreignKeyViolation is the SQLSTATE raised when a REFERENCES constraint fails.
const foreignKeyViolation = "23503"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// mapReadError translates sql.ErrNoRows into repository.ErrNotFound.
func mapReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

// mapWriteError translates constraint failures into repository errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", repository.ErrInvalidReference, pgErr.ConstraintName)
	}
	return mapReadError(err)
}

// expectAffected returns repository.ErrNotFound when a statement touched no rows.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
