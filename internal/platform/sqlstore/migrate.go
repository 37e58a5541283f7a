package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// NewMigrator returns a goose provider over the dialect's embedded migrations.
// Providers hold no global state, so several can run in one process.
func NewMigrator(db *sql.DB, d Dialect) (*goose.Provider, error) {
	p, err := goose.NewProvider(d.GooseDialect(), db, d.Migrations())
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migration provider: %w", d.Name(), err)
	}
	return p, nil
}
