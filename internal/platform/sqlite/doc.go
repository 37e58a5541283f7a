// Package sqlite provides the SQLite dialect for internal/platform/sqlstore.
// It uses modernc.org/sqlite, a pure Go SQLite implementation that needs no CGO,
// for single-binary deployments and for tests that want a real database.
package sqlite
