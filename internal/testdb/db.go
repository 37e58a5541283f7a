package testdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/recipe-api/internal/ciutil"
	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/platform/postgres"
	"github.com/phrazzld/recipe-api/internal/platform/sqlite"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// Engine is a migrated database paired with its dialect.
type Engine struct {
	Name    string
	DB      *sql.DB
	Dialect sqlstore.Dialect
}

// GetTestDatabaseURL returns the PostgreSQL URL for tests, or "".
func GetTestDatabaseURL() string {
	return ciutil.GetTestDatabaseURL(nil)
}

// NewSQLite returns a freshly migrated SQLite database private to the test.
func NewSQLite(t *testing.T) Engine {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	l, _ := logger.NewTestLogger()
	db, err := sqlite.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "recipe.db"),
	}, l)
	require.NoError(t, err, "failed to open sqlite test database")
	t.Cleanup(func() { _ = db.Close() })

	e := Engine{Name: "sqlite", DB: db, Dialect: sqlite.Dialect{}}
	Migrate(t, e)
	return e
}

// NewPostgres returns a migrated PostgreSQL connection, skipping the test when
// no database URL is configured. Tests share the database and must use unique data.
func NewPostgres(t *testing.T) Engine {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("RECIPE_TEST_DATABASE_URL not set - skipping PostgreSQL test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	l, _ := logger.NewTestLogger()
	db, err := postgres.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		URL:          dbURL,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}, l)
	require.NoError(t, err, "failed to open postgres test database")
	t.Cleanup(func() { _ = db.Close() })

	e := Engine{Name: "postgres", DB: db, Dialect: postgres.Dialect{}}
	Migrate(t, e)
	return e
}

// Engines returns a SQLite engine, plus PostgreSQL when it is configured.
func Engines(t *testing.T) []Engine {
	t.Helper()
	engines := []Engine{NewSQLite(t)}
	if GetTestDatabaseURL() != "" {
		engines = append(engines, NewPostgres(t))
	}
	return engines
}

// Migrate applies all embedded migrations to e.
func Migrate(t *testing.T, e Engine) {
	t.Helper()

	p, err := sqlstore.NewMigrator(e.DB, e.Dialect)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err = p.Up(ctx)
	require.NoError(t, err, "failed to run migrations")
}

// WithTx executes fn within a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		_ = tx.Rollback()
	}()

	fn(t, tx)
}
