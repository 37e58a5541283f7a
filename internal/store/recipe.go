package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/recipe-api/internal/domain"
)

// RecipeStore defines the interface for recipe persistence needed by the
// account and bookmark flows.
type RecipeStore interface {
	// Create saves a new recipe and sets its ID.
	Create(ctx context.Context, recipe *domain.Recipe) error

	// GetByID retrieves a recipe by ID. Returns ErrRecipeNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)

	// DeleteByAuthor removes every recipe authored by accountID together with the
	// likes, bookmarks and references other accounts hold on those recipes.
	// It returns the number of recipes removed.
	DeleteByAuthor(ctx context.Context, accountID int64) (int64, error)

	// WithTx returns a new RecipeStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) RecipeStore
}
