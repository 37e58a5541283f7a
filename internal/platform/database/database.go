// Package database selects the storage engine named in configuration and
// keeps its schema current with the engine's embedded goose migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/postgres"
	"github.com/phrazzld/recipe-api/internal/platform/sqlite"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/pressly/goose/v3"
)

// Open connects to the configured engine and returns the dialect the stores
// use to talk to it.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, sqlstore.Dialect, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, postgres.Dialect{}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, sqlite.Dialect{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrator runs the dialect's migrations and logs each step. Every Migrator
// gets a run ID so the log lines of one invocation can be grouped.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator creates a Migrator for db.
func NewMigrator(db *sql.DB, dialect sqlstore.Dialect, logger *slog.Logger) (*Migrator, error) {
	provider, err := sqlstore.NewMigrator(db, dialect)
	if err != nil {
		return nil, err
	}
	return &Migrator{
		provider: provider,
		logger: logger.With(
			slog.String("component", "migrations"),
			slog.String("run_id", uuid.NewString()),
			slog.String("dialect", dialect.Name())),
	}, nil
}

// Up applies every pending migration and returns the resulting version.
func (m *Migrator) Up(ctx context.Context) (int64, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		m.logger.Error("migration failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	m.logResults("applied migration", results)
	return m.version(ctx, len(results))
}

// Down rolls back the most recent migration and returns the resulting version.
func (m *Migrator) Down(ctx context.Context) (int64, error) {
	result, err := m.provider.Down(ctx)
	if err != nil {
		m.logger.Error("rollback failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to roll back migration: %w", err)
	}
	m.logResults("rolled back migration", []*goose.MigrationResult{result})
	return m.version(ctx, 1)
}

// Status reports every known migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	return statuses, nil
}

func (m *Migrator) logResults(msg string, results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		m.logger.Info(msg,
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
}

func (m *Migrator) version(ctx context.Context, changed int) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	m.logger.Info("database schema version",
		slog.Int64("version", v),
		slog.Int("changed", changed))
	return v, nil
}
