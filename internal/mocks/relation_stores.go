package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/store"
)

// MockBookmarkStore implements store.BookmarkStore for testing
type MockBookmarkStore struct {
	ExistsFn          func(ctx context.Context, accountID, recipeID int64) (bool, error)
	InsertFn          func(ctx context.Context, accountID, recipeID int64) error
	DeleteFn          func(ctx context.Context, accountID, recipeID int64) error
	DeleteByAccountFn func(ctx context.Context, accountID int64) (int64, error)
}

var _ store.BookmarkStore = (*MockBookmarkStore)(nil)

// Exists implements store.BookmarkStore
func (m *MockBookmarkStore) Exists(ctx context.Context, accountID, recipeID int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, accountID, recipeID)
	}
	return false, nil
}

// Insert implements store.BookmarkStore
func (m *MockBookmarkStore) Insert(ctx context.Context, accountID, recipeID int64) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, accountID, recipeID)
	}
	return nil
}

// Delete implements store.BookmarkStore
func (m *MockBookmarkStore) Delete(ctx context.Context, accountID, recipeID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, accountID, recipeID)
	}
	return nil
}

// DeleteByAccount implements store.BookmarkStore
func (m *MockBookmarkStore) DeleteByAccount(ctx context.Context, accountID int64) (int64, error) {
	if m.DeleteByAccountFn != nil {
		return m.DeleteByAccountFn(ctx, accountID)
	}
	return 0, nil
}

// WithTx implements store.BookmarkStore
func (m *MockBookmarkStore) WithTx(*sql.Tx) store.BookmarkStore { return m }

// MockLikeStore implements store.LikeStore for testing
type MockLikeStore struct {
	InsertFn          func(ctx context.Context, accountID, recipeID int64) error
	DeleteByAccountFn func(ctx context.Context, accountID int64) (int64, error)
}

var _ store.LikeStore = (*MockLikeStore)(nil)

// Insert implements store.LikeStore
func (m *MockLikeStore) Insert(ctx context.Context, accountID, recipeID int64) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, accountID, recipeID)
	}
	return nil
}

// DeleteByAccount implements store.LikeStore
func (m *MockLikeStore) DeleteByAccount(ctx context.Context, accountID int64) (int64, error) {
	if m.DeleteByAccountFn != nil {
		return m.DeleteByAccountFn(ctx, accountID)
	}
	return 0, nil
}

// WithTx implements store.LikeStore
func (m *MockLikeStore) WithTx(*sql.Tx) store.LikeStore { return m }

// MockReferenceStore implements store.ReferenceStore for testing
type MockReferenceStore struct {
	InsertFn          func(ctx context.Context, ref *domain.UserReference) error
	DeleteByAccountFn func(ctx context.Context, accountID int64) (int64, error)
}

var _ store.ReferenceStore = (*MockReferenceStore)(nil)

// Insert implements store.ReferenceStore
func (m *MockReferenceStore) Insert(ctx context.Context, ref *domain.UserReference) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, ref)
	}
	return nil
}

// DeleteByAccount implements store.ReferenceStore
func (m *MockReferenceStore) DeleteByAccount(ctx context.Context, accountID int64) (int64, error) {
	if m.DeleteByAccountFn != nil {
		return m.DeleteByAccountFn(ctx, accountID)
	}
	return 0, nil
}

// WithTx implements store.ReferenceStore
func (m *MockReferenceStore) WithTx(*sql.Tx) store.ReferenceStore { return m }
