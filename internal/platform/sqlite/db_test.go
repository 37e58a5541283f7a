package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/platform/sqlite"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l, _ := logger.NewTestLogger()
	path := filepath.Join(t.TempDir(), "nested", "recipe.db")

	db, err := sqlite.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: path}, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys must be enforced")

	p, err := sqlstore.NewMigrator(db, sqlite.Dialect{})
	require.NoError(t, err)

	results, err := p.Up(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	version, err := p.GetDBVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = p.Down(ctx)
	require.NoError(t, err)

	version, err = p.GetDBVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}
