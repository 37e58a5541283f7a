package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/recipe-api/internal/store"
)

// UniqueLikeConstraint names the unique (account_id, recipe_id) constraint on likes.
const UniqueLikeConstraint = "uq_recipe_like"

// LikeStore implements store.LikeStore.
type LikeStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.LikeStore = (*LikeStore)(nil)

// NewLikeStore creates a LikeStore. If logger is nil, a default logger will be used.
func NewLikeStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *LikeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LikeStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "like_store")),
	}
}

// WithTx implements store.LikeStore.WithTx
func (s *LikeStore) WithTx(tx *sql.Tx) store.LikeStore {
	return &LikeStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Insert implements store.LikeStore.Insert
func (s *LikeStore) Insert(ctx context.Context, accountID, recipeID int64) error {
	query := s.dialect.Rebind(`INSERT INTO likes (account_id, recipe_id, created_at) VALUES ($1, $2, $3)`)
	if _, err := s.db.ExecContext(ctx, query, accountID, recipeID, nowUTC()); err != nil {
		err = s.dialect.ClassifyError(err)
		if ce, ok := AsConstraintError(err); ok && store.IsDuplicateError(ce) &&
			(ce.Mentions(UniqueLikeConstraint) || ce.Mentions("likes.")) {
			return fmt.Errorf("%w: %v", store.ErrLikeExists, err)
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// DeleteByAccount implements store.LikeStore.DeleteByAccount
func (s *LikeStore) DeleteByAccount(ctx context.Context, accountID int64) (int64, error) {
	return deleteByAccount(ctx, s.db, s.dialect, "likes", accountID)
}
