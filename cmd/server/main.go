// Package main implements the entry point for the recipe API server, which
// authorizes every request against the route policy table and serves the
// account, bookmark, like and completion endpoints.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/database"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	skipMigrations := flag.Bool("skip-migrations", false, "do not apply pending migrations at startup")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, !*skipMigrations); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, builds the application and serves until ctx ends.
func run(ctx context.Context, configPath string, migrate bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("environment", cfg.Server.Environment),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("dev_routes_enabled", cfg.Auth.DevRoutesEnabled))

	db, dialect, err := database.Open(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if migrate {
		if err := migrateUp(ctx, db, dialect, l); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, l, db, dialect)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

func migrateUp(ctx context.Context, db *sql.DB, dialect sqlstore.Dialect, logger *slog.Logger) error {
	m, err := database.NewMigrator(db, dialect, logger)
	if err != nil {
		return err
	}
	_, err = m.Up(ctx)
	return err
}
