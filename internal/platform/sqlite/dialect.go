package sqlite

import (
	"embed"
	"io/fs"

	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Dialect is the SQLite sqlstore.Dialect.
type Dialect struct{}

var _ sqlstore.Dialect = Dialect{}

// Name implements sqlstore.Dialect.
func (Dialect) Name() string { return "sqlite" }

// Rebind implements sqlstore.Dialect.
func (Dialect) Rebind(query string) string { return sqlstore.RebindQuestion(query) }

// LockClause implements sqlstore.Dialect. Transactions begin IMMEDIATE, which
// already holds the database write lock, and SQLite has no FOR UPDATE.
func (Dialect) LockClause() string { return "" }

// ClassifyError implements sqlstore.Dialect.
func (Dialect) ClassifyError(err error) error { return MapError(err) }

// GooseDialect implements sqlstore.Dialect.
func (Dialect) GooseDialect() goose.Dialect { return goose.DialectSQLite3 }

// Migrations implements sqlstore.Dialect.
func (Dialect) Migrations() fs.FS {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}
