package testdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

// Stores bundles the SQL stores bound to one engine.
type Stores struct {
	Accounts   *sqlstore.AccountStore
	Recipes    *sqlstore.RecipeStore
	Bookmarks  *sqlstore.BookmarkStore
	Likes      *sqlstore.LikeStore
	References *sqlstore.ReferenceStore
}

// NewStores builds every store on e.
func NewStores(e Engine) Stores {
	return Stores{
		Accounts:   sqlstore.NewAccountStore(e.DB, e.Dialect, nil),
		Recipes:    sqlstore.NewRecipeStore(e.DB, e.Dialect, nil),
		Bookmarks:  sqlstore.NewBookmarkStore(e.DB, e.Dialect, nil),
		Likes:      sqlstore.NewLikeStore(e.DB, e.Dialect, nil),
		References: sqlstore.NewReferenceStore(e.DB, e.Dialect, nil),
	}
}

var seq atomic.Int64

// UniqueLogin returns a login that is unique across tests sharing a database.
func UniqueLogin(prefix string) string {
	return fmt.Sprintf("%s%d%s", prefix, seq.Add(1), uuid.NewString()[:8])
}

// CreateAccount inserts an account with the given password hash.
func CreateAccount(t *testing.T, s Stores, login, passwordHash string) *domain.Account {
	t.Helper()

	a, err := domain.NewAccount(login, login+"-nick", login+"@example.com", passwordHash)
	require.NoError(t, err)
	require.NoError(t, s.Accounts.Create(context.Background(), a))
	return a
}

// CreateRecipe inserts a recipe authored by authorID.
func CreateRecipe(t *testing.T, s Stores, authorID int64, title string) *domain.Recipe {
	t.Helper()

	r := &domain.Recipe{AuthorID: authorID, Title: title}
	require.NoError(t, s.Recipes.Create(context.Background(), r))
	return r
}

// CountRows returns the number of rows in table matching where (a complete
// condition with $1 for arg).
func CountRows(t *testing.T, e Engine, table, where string, arg any) int {
	t.Helper()

	var n int
	query := e.Dialect.Rebind(`SELECT COUNT(*) FROM ` + table + ` WHERE ` + where)
	require.NoError(t, e.DB.QueryRowContext(context.Background(), query, arg).Scan(&n))
	return n
}
