package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/mocks"
	"github.com/phrazzld/recipe-api/internal/platform/postgres"
	"github.com/phrazzld/recipe-api/internal/platform/sqlstore"
	"github.com/phrazzld/recipe-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockService(t *testing.T) (service.AccountService, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock := newTxDB(t)
	d := postgres.Dialect{}
	stores := service.Stores{
		Accounts:   sqlstore.NewAccountStore(db, d, nil),
		Recipes:    sqlstore.NewRecipeStore(db, d, nil),
		Likes:      sqlstore.NewLikeStore(db, d, nil),
		Bookmarks:  sqlstore.NewBookmarkStore(db, d, nil),
		References: sqlstore.NewReferenceStore(db, d, nil),
	}
	return service.NewAccountService(db, stores, &mocks.MockPasswordHasher{}, nil, testLogger()), sqlMock
}

func expectLockAlice(sqlMock sqlmock.Sqlmock) {
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "login", "nickname", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(int64(7), "alice", "alice-nick", "alice@example.com", "hashed:secret", now, now)
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE login = $1 FOR UPDATE")).
		WithArgs("alice").
		WillReturnRows(rows)
}

// expectDeleteStatements registers the delete statements in execution order,
// failing the one at index failAt (or none when failAt < 0).
func expectDeleteStatements(sqlMock sqlmock.Sqlmock, failAt int) {
	statements := []string{
		"DELETE FROM likes WHERE account_id = $1",
		"DELETE FROM bookmarks WHERE account_id = $1",
		"DELETE FROM user_references WHERE account_id = $1",
		"DELETE FROM likes WHERE recipe_id IN (SELECT id FROM recipes WHERE author_id = $1)",
		"DELETE FROM bookmarks WHERE recipe_id IN (SELECT id FROM recipes WHERE author_id = $1)",
		"DELETE FROM user_references WHERE recipe_id IN (SELECT id FROM recipes WHERE author_id = $1)",
		"DELETE FROM recipes WHERE author_id = $1",
		"DELETE FROM accounts WHERE id = $1",
	}
	for i, stmt := range statements {
		exp := sqlMock.ExpectExec(regexp.QuoteMeta(stmt)).WithArgs(int64(7))
		if i == failAt {
			exp.WillReturnError(errors.New("statement timeout"))
			return
		}
		exp.WillReturnResult(sqlmock.NewResult(0, 1))
	}
}

func TestDeleteAccount_SQLStatementOrder(t *testing.T) {
	t.Parallel()

	svc, sqlMock := newSQLMockService(t)

	sqlMock.ExpectBegin()
	expectLockAlice(sqlMock)
	expectDeleteStatements(sqlMock, -1)
	sqlMock.ExpectCommit()

	require.NoError(t, svc.DeleteAccount(context.Background(), "alice", "secret"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDeleteAccount_SQLRollbackOnFailure(t *testing.T) {
	t.Parallel()

	for _, failAt := range []int{0, 2, 6, 7} {
		svc, sqlMock := newSQLMockService(t)

		sqlMock.ExpectBegin()
		expectLockAlice(sqlMock)
		expectDeleteStatements(sqlMock, failAt)
		sqlMock.ExpectRollback()

		err := svc.DeleteAccount(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, domain.ErrDeleteFailed, "failAt=%d", failAt)
		assert.NoError(t, sqlMock.ExpectationsWereMet(), "failAt=%d", failAt)
	}
}

func TestDeleteAccount_SQLWrongPasswordTouchesNothing(t *testing.T) {
	t.Parallel()

	svc, sqlMock := newSQLMockService(t)

	sqlMock.ExpectBegin()
	expectLockAlice(sqlMock)
	sqlMock.ExpectRollback()

	err := svc.DeleteAccount(context.Background(), "alice", "not-it")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
