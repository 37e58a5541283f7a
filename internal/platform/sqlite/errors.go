package sqlite

import (
	"strings"

	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/phrazzld/recipe-api/internal/store"
)

// SQLite reports constraint failures only through the message text, e.g.
// "UNIQUE constraint failed: likes.account_id, likes.recipe_id".
var constraintMarkers = []struct {
	marker string
	kind   error
}{
	{"UNIQUE constraint failed: ", store.ErrDuplicate},
	{"PRIMARY KEY constraint failed: ", store.ErrDuplicate},
	{"FOREIGN KEY constraint failed", store.ErrConstraintViolation},
	{"NOT NULL constraint failed: ", store.ErrConstraintViolation},
	{"CHECK constraint failed: ", store.ErrConstraintViolation},
}

// MapError classifies SQLite constraint failures as *sqlstore.ConstraintError.
// Other errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, m := range constraintMarkers {
		idx := strings.Index(msg, m.marker)
		if idx < 0 {
			continue
		}
		constraint := msg[idx+len(m.marker):]
		// Drop the trailing " (2067)" result code modernc appends.
		if p := strings.LastIndex(constraint, " ("); p >= 0 {
			constraint = constraint[:p]
		}
		if constraint == "" {
			constraint = strings.TrimSpace(strings.TrimSuffix(m.marker, ": "))
		}
		return &sqlstore.ConstraintError{Kind: m.kind, Constraint: constraint, Err: err}
	}
	return err
}
