package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/store"
)

// MockRecipeStore implements store.RecipeStore for testing
type MockRecipeStore struct {
	CreateFn         func(ctx context.Context, recipe *domain.Recipe) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Recipe, error)
	DeleteByAuthorFn func(ctx context.Context, accountID int64) (int64, error)
}

var _ store.RecipeStore = (*MockRecipeStore)(nil)

// Create implements store.RecipeStore
func (m *MockRecipeStore) Create(ctx context.Context, recipe *domain.Recipe) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, recipe)
	}
	return nil
}

// GetByID implements store.RecipeStore
func (m *MockRecipeStore) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrRecipeNotFound
}

// DeleteByAuthor implements store.RecipeStore
func (m *MockRecipeStore) DeleteByAuthor(ctx context.Context, accountID int64) (int64, error) {
	if m.DeleteByAuthorFn != nil {
		return m.DeleteByAuthorFn(ctx, accountID)
	}
	return 0, nil
}

// WithTx implements store.RecipeStore
func (m *MockRecipeStore) WithTx(*sql.Tx) store.RecipeStore { return m }
