package sqlite_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/recipe-api/internal/platform/sqlite"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/phrazzld/recipe-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		msg            string
		wantKind       error
		wantConstraint string
	}{
		{
			name:           "unique pair",
			msg:            "constraint failed: UNIQUE constraint failed: likes.account_id, likes.recipe_id (2067)",
			wantKind:       store.ErrDuplicate,
			wantConstraint: "likes.account_id, likes.recipe_id",
		},
		{
			name:           "unique column without code",
			msg:            "UNIQUE constraint failed: accounts.email",
			wantKind:       store.ErrDuplicate,
			wantConstraint: "accounts.email",
		},
		{
			name:           "foreign key",
			msg:            "constraint failed: FOREIGN KEY constraint failed (787)",
			wantKind:       store.ErrConstraintViolation,
			wantConstraint: "FOREIGN KEY constraint failed",
		},
		{
			name:           "check",
			msg:            "CHECK constraint failed: kind IN ('completion') (275)",
			wantKind:       store.ErrConstraintViolation,
			wantConstraint: "kind IN ('completion')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := sqlite.MapError(errors.New(tt.msg))

			ce, ok := sqlstore.AsConstraintError(mapped)
			require.True(t, ok)
			assert.ErrorIs(t, mapped, tt.wantKind)
			assert.Equal(t, tt.wantConstraint, ce.Constraint)
		})
	}
}

func TestMapErrorPassThrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sqlite.MapError(nil))

	busy := errors.New("database is locked (5)")
	assert.Equal(t, busy, sqlite.MapError(busy))
}

func TestDialect(t *testing.T) {
	t.Parallel()

	d := sqlite.Dialect{}
	assert.Equal(t, "sqlite", d.Name())
	assert.Equal(t, "SELECT ? FROM t WHERE a = ?", d.Rebind("SELECT $1 FROM t WHERE a = $2"))
	assert.Empty(t, d.LockClause())
}

func TestDSN(t *testing.T) {
	t.Parallel()

	dsn := sqlite.DSN("/tmp/recipe.db")
	assert.Contains(t, dsn, "file:/tmp/recipe.db?")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "foreign_keys%281%29")
}
