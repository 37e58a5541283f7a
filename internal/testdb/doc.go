// Package testdb provides database helpers for tests.
//
// SQLite databases are created per test in t.TempDir(), migrated with the same
// embedded goose migrations the server uses, and closed on cleanup. When
// DATABASE_URL (or RECIPE_TEST_DATABASE_URL) is set, the same helpers also hand
// out a migrated PostgreSQL connection so store tests run on both engines.
//
// Basic usage:
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    for _, e := range testdb.Engines(t) {
//	        stores := testdb.NewStores(e)
//	        ...
//	    }
//	}
package testdb
