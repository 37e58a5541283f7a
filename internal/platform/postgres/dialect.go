package postgres

import (
	"embed"
	"io/fs"

	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Dialect is the PostgreSQL sqlstore.Dialect.
type Dialect struct{}

var _ sqlstore.Dialect = Dialect{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "postgres" }

// Rebind implements sqlstore.Dialect. PostgreSQL uses $N natively.
func (Dialect) Rebind(query string) string { return query }

// LockClause implements sqlstore.Dialect.
func (Dialect) LockClause() string { return " FOR UPDATE" }

// ClassifyError implements sqlstore.Dialect.
func (Dialect) ClassifyError(err error) error { return MapError(err) }

// GooseDialect implements sqlstore.Dialect.
func (Dialect) GooseDialect() goose.Dialect { return goose.DialectPostgres }

// Migrations implements sqlstore.Dialect.
func (Dialect) Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}
