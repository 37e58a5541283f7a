package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/store"
)

// ReferenceStore implements store.ReferenceStore.
type ReferenceStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.ReferenceStore = (*ReferenceStore)(nil)

// NewReferenceStore creates a ReferenceStore. If logger is nil, a default logger will be used.
func NewReferenceStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *ReferenceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "reference_store")),
	}
}

// WithTx implements store.ReferenceStore.WithTx
func (s *ReferenceStore) WithTx(tx *sql.Tx) store.ReferenceStore {
	return &ReferenceStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Insert implements store.ReferenceStore.Insert
func (s *ReferenceStore) Insert(ctx context.Context, ref *domain.UserReference) error {
	if ref.Kind == "" {
		return fmt.Errorf("%w: reference kind is required", store.ErrInvalidEntity)
	}
	if ref.CreatedAt.IsZero() {
		ref.CreatedAt = nowUTC()
	}
	query := s.dialect.Rebind(`
		INSERT INTO user_references (account_id, recipe_id, kind, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query, ref.AccountID, ref.RecipeID, string(ref.Kind), ref.CreatedAt).Scan(&ref.ID)
	if err != nil {
		return fmt.Errorf("failed to insert user reference: %w", s.dialect.ClassifyError(err))
	}
	return nil
}

// DeleteByAccount implements store.ReferenceStore.DeleteByAccount
func (s *ReferenceStore) DeleteByAccount(ctx context.Context, accountID int64) (int64, error) {
	return deleteByAccount(ctx, s.db, s.dialect, "user_references", accountID)
}
