// Package postgres provides the PostgreSQL dialect for internal/platform/sqlstore:
// connection setup through the pgx database/sql driver, SQLSTATE error
// classification, row locking, and the embedded goose migrations.
package postgres
