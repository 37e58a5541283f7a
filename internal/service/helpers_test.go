package service_test

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/mocks"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/service"
	"github.com/phrazzld/recipe-api/internal/testdb"
	"github.com/stretchr/testify/require"
)

// newTxDB returns a sqlmock database for services whose stores are mocked;
// only the transaction boundaries reach it.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testLogger() *slog.Logger {
	l, _ := logger.NewTestLogger()
	return l
}

// mockStores is a service.Stores backed by fn-field mocks.
type mockStores struct {
	accounts   *mocks.MockAccountStore
	recipes    *mocks.MockRecipeStore
	likes      *mocks.MockLikeStore
	bookmarks  *mocks.MockBookmarkStore
	references *mocks.MockReferenceStore
}

func newMockStores() *mockStores {
	return &mockStores{
		accounts:   &mocks.MockAccountStore{},
		recipes:    &mocks.MockRecipeStore{},
		likes:      &mocks.MockLikeStore{},
		bookmarks:  &mocks.MockBookmarkStore{},
		references: &mocks.MockReferenceStore{},
	}
}

func (m *mockStores) stores() service.Stores {
	return service.Stores{
		Accounts:   m.accounts,
		Recipes:    m.recipes,
		Likes:      m.likes,
		Bookmarks:  m.bookmarks,
		References: m.references,
	}
}

func sqlStores(s testdb.Stores) service.Stores {
	return service.Stores{
		Accounts:   s.Accounts,
		Recipes:    s.Recipes,
		Likes:      s.Likes,
		Bookmarks:  s.Bookmarks,
		References: s.References,
	}
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:           7,
		Login:        "alice",
		Nickname:     "alice-nick",
		Email:        "alice@example.com",
		PasswordHash: "hashed:secret",
	}
}
