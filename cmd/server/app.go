package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/metrics"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/phrazzld/recipe-api/internal/policy"
	"github.com/phrazzld/recipe-api/internal/service"
	"github.com/phrazzld/recipe-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	metrics *metrics.Metrics
	policy  *policy.Table

	jwtService auth.JWTService
	hasher     auth.PasswordHasher

	accounts   service.AccountService
	bookmarks  service.BookmarkService
	likes      service.LikeService
	references service.ReferenceService
}

// newApplication wires stores, services and the policy table onto an open,
// migrated database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, dialect sqlstore.Dialect) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
		policy:  policy.NewDefaultTable(policy.Options{DevRoutesEnabled: cfg.Auth.DevRoutesEnabled}),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes),
		slog.Int("refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes))

	app.hasher, err = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	stores := service.Stores{
		Accounts:   sqlstore.NewAccountStore(db, dialect, logger),
		Recipes:    sqlstore.NewRecipeStore(db, dialect, logger),
		Likes:      sqlstore.NewLikeStore(db, dialect, logger),
		Bookmarks:  sqlstore.NewBookmarkStore(db, dialect, logger),
		References: sqlstore.NewReferenceStore(db, dialect, logger),
	}

	app.accounts = service.NewAccountService(db, stores, app.hasher, app.metrics, logger)
	app.bookmarks = service.NewBookmarkService(db, stores, app.metrics, logger)
	app.likes = service.NewLikeService(stores, logger)
	app.references = service.NewReferenceService(stores, logger)

	logger.Info("application initialized",
		slog.String("dialect", dialect.Name()),
		slog.Int("policy_rules", app.policy.Len()))
	return app, nil
}

// Run serves the API, and the metrics listener when enabled, until ctx is
// cancelled, then shuts both down.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	servers := []*http.Server{app.newAPIServer()}
	if app.config.Metrics.Enabled {
		servers = append(servers, app.newMetricsServer())
	}
	if err := app.serve(ctx, servers...); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
