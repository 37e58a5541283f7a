package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pressly/goose/v3"
)

// Dialect adapts the shared queries to one database engine.
type Dialect interface {
	// Name is the engine name used in logs.
	Name() string

	// Rebind rewrites $N placeholders into the engine's syntax.
	Rebind(query string) string

	// LockClause is appended to a SELECT to lock the returned rows until the
	// transaction ends. Engines that lock at transaction start return "".
	LockClause() string

	// ClassifyError converts engine errors into *ConstraintError values wrapping
	// store.ErrDuplicate or store.ErrConstraintViolation. Other errors pass through.
	ClassifyError(err error) error

	// GooseDialect names the goose dialect for migrations.
	GooseDialect() goose.Dialect

	// Migrations returns the embedded migration files for this engine.
	Migrations() fs.FS
}

// ConstraintError is an integrity violation reported by the database.
type ConstraintError struct {
	// Kind is store.ErrDuplicate or store.ErrConstraintViolation.
	Kind error
	// Constraint identifies the violated constraint: its name on PostgreSQL,
	// the "table.column" list on SQLite.
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.Constraint, e.Err)
}

// Unwrap exposes both the kind and the driver error to errors.Is/errors.As.
func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Mentions reports whether the violated constraint refers to name.
func (e *ConstraintError) Mentions(name string) bool {
	return strings.Contains(strings.ToLower(e.Constraint), strings.ToLower(name))
}

// AsConstraintError extracts a *ConstraintError from err.
func AsConstraintError(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// RebindQuestion rewrites $N placeholders as '?'. Arguments are bound
// positionally, so each $N must appear exactly once and in ascending order.
func RebindQuestion(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c == '$' && i+1 < len(query) && isDigit(query[i+1]) {
			b.WriteByte('?')
			for i+1 < len(query) && isDigit(query[i+1]) {
				i++
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// mapError maps sql.ErrNoRows to notFound and delegates everything else to the dialect.
func mapError(d Dialect, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return d.ClassifyError(err)
}

// checkRowsAffected returns notFound when result reports zero affected rows.
func checkRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to checkRowsAffected")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// rowsAffected returns the affected row count, treating drivers that cannot
// report it as zero.
func rowsAffected(result sql.Result) int64 {
	n, err := result.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
