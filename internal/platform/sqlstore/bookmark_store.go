package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/recipe-api/internal/store"
)

// BookmarkStore implements store.BookmarkStore.
type BookmarkStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.BookmarkStore = (*BookmarkStore)(nil)

// NewBookmarkStore creates a BookmarkStore. If logger is nil, a default logger will be used.
func NewBookmarkStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *BookmarkStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BookmarkStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "bookmark_store")),
	}
}

// WithTx implements store.BookmarkStore.WithTx
func (s *BookmarkStore) WithTx(tx *sql.Tx) store.BookmarkStore {
	return &BookmarkStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Exists implements store.BookmarkStore.Exists
func (s *BookmarkStore) Exists(ctx context.Context, accountID, recipeID int64) (bool, error) {
	query := s.dialect.Rebind(`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE account_id = $1 AND recipe_id = $2)`)
	var found bool
	if err := s.db.QueryRowContext(ctx, query, accountID, recipeID).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", s.dialect.ClassifyError(err))
	}
	return found, nil
}

// Insert implements store.BookmarkStore.Insert. An existing bookmark is reported as
// store.ErrBookmarkExists without raising a constraint error, so the surrounding
// transaction stays usable on Postgres.
func (s *BookmarkStore) Insert(ctx context.Context, accountID, recipeID int64) error {
	query := s.dialect.Rebind(`INSERT INTO bookmarks (account_id, recipe_id, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (account_id, recipe_id) DO NOTHING`)
	result, err := s.db.ExecContext(ctx, query, accountID, recipeID, nowUTC())
	if err != nil {
		err = s.dialect.ClassifyError(err)
		if store.IsDuplicateError(err) {
			return store.ErrBookmarkExists
		}
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}
	if rowsAffected(result) == 0 {
		return store.ErrBookmarkExists
	}
	return nil
}

// Delete implements store.BookmarkStore.Delete
func (s *BookmarkStore) Delete(ctx context.Context, accountID, recipeID int64) error {
	query := s.dialect.Rebind(`DELETE FROM bookmarks WHERE account_id = $1 AND recipe_id = $2`)
	result, err := s.db.ExecContext(ctx, query, accountID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", s.dialect.ClassifyError(err))
	}
	return checkRowsAffected(result, store.ErrNotFound)
}

// DeleteByAccount implements store.BookmarkStore.DeleteByAccount
func (s *BookmarkStore) DeleteByAccount(ctx context.Context, accountID int64) (int64, error) {
	return deleteByAccount(ctx, s.db, s.dialect, "bookmarks", accountID)
}

// deleteByAccount removes every row of table owned by accountID.
func deleteByAccount(ctx context.Context, db store.DBTX, d Dialect, table string, accountID int64) (int64, error) {
	result, err := db.ExecContext(ctx, d.Rebind(`DELETE FROM `+table+` WHERE account_id = $1`), accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", table, d.ClassifyError(err))
	}
	return rowsAffected(result), nil
}
