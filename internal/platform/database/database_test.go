package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/database"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/platform/sqlite"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()
	l, _ := logger.NewTestLogger()

	_, _, err := database.Open(context.Background(), config.DatabaseConfig{Driver: "mysql"}, l)
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}

func TestMigrator_UpDownStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l, buf := logger.NewTestLogger()
	db, dialect, err := database.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "recipe.db"),
	}, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.IsType(t, sqlite.Dialect{}, dialect)

	m, err := database.NewMigrator(db, dialect, l)
	require.NoError(t, err)

	version, err := m.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = m.Up(ctx)
	require.NoError(t, err, "a second run has nothing to apply")
	assert.Equal(t, int64(1), version)

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, goose.StateApplied, statuses[0].State)

	version, err = m.Down(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	entries, err := buf.Entries()
	require.NoError(t, err)
	runIDs := map[any]bool{}
	for _, e := range entries {
		if e["component"] == "migrations" {
			runIDs[e["run_id"]] = true
		}
	}
	assert.Len(t, runIDs, 1, "one migrator logs under one run id")
}
