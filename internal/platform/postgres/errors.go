package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/phrazzld/recipe-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// integrityClass is the SQLSTATE class shared by all integrity constraint violations
	integrityClass = "23"
)

// MapError classifies PostgreSQL integrity violations as *sqlstore.ConstraintError.
// Unique violations wrap store.ErrDuplicate; every other class 23 error wraps
// store.ErrConstraintViolation. Other errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 || pgErr.Code[:2] != integrityClass {
		return err
	}

	constraint := pgErr.ConstraintName
	if constraint == "" {
		constraint = fmt.Sprintf("%s.%s", pgErr.TableName, pgErr.ColumnName)
	}

	kind := store.ErrConstraintViolation
	if pgErr.Code == uniqueViolationCode {
		kind = store.ErrDuplicate
	}
	return &sqlstore.ConstraintError{Kind: kind, Constraint: constraint, Err: err}
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
