// Package sqlstore implements the store interfaces on database/sql.
//
// Queries are written once with PostgreSQL-style $N placeholders. A Dialect
// supplied by internal/platform/postgres or internal/platform/sqlite adapts them
// to the target engine and classifies engine-specific constraint errors.
package sqlstore
