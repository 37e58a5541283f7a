package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/store"
)

// RecipeStore implements store.RecipeStore.
type RecipeStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

var _ store.RecipeStore = (*RecipeStore)(nil)

// NewRecipeStore creates a RecipeStore. If logger is nil, a default logger will be used.
func NewRecipeStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *RecipeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "recipe_store")),
	}
}

// WithTx implements store.RecipeStore.WithTx
func (s *RecipeStore) WithTx(tx *sql.Tx) store.RecipeStore {
	return &RecipeStore{db: tx, dialect: s.dialect, logger: s.logger}
}

// Create implements store.RecipeStore.Create
func (s *RecipeStore) Create(ctx context.Context, recipe *domain.Recipe) error {
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.Title == "" || recipe.AuthorID <= 0 {
		return fmt.Errorf("%w: recipe needs an author and a title", store.ErrInvalidEntity)
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = nowUTC()
	}

	query := s.dialect.Rebind(`
		INSERT INTO recipes (author_id, title, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`)
	err := s.db.QueryRowContext(ctx, query, recipe.AuthorID, recipe.Title, recipe.CreatedAt).Scan(&recipe.ID)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", s.dialect.ClassifyError(err))
	}
	return nil
}

// GetByID implements store.RecipeStore.GetByID
func (s *RecipeStore) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	query := s.dialect.Rebind(`SELECT id, author_id, title, created_at FROM recipes WHERE id = $1`)

	var r domain.Recipe
	err := s.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.AuthorID, &r.Title, &r.CreatedAt)
	if err != nil {
		err = mapError(s.dialect, err, store.ErrRecipeNotFound)
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &r, nil
}

// DeleteByAuthor implements store.RecipeStore.DeleteByAuthor
func (s *RecipeStore) DeleteByAuthor(ctx context.Context, accountID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Rows other accounts hold on these recipes go first; nothing cascades.
	dependents := []struct {
		table string
		query string
	}{
		{"likes", `DELETE FROM likes WHERE recipe_id IN (SELECT id FROM recipes WHERE author_id = $1)`},
		{"bookmarks", `DELETE FROM bookmarks WHERE recipe_id IN (SELECT id FROM recipes WHERE author_id = $1)`},
		{"user_references", `DELETE FROM user_references WHERE recipe_id IN (SELECT id FROM recipes WHERE author_id = $1)`},
	}
	for _, d := range dependents {
		result, err := s.db.ExecContext(ctx, s.dialect.Rebind(d.query), accountID)
		if err != nil {
			return 0, fmt.Errorf("failed to delete %s on authored recipes: %w", d.table, s.dialect.ClassifyError(err))
		}
		log.Debug("deleted rows on authored recipes",
			slog.String("table", d.table),
			slog.Int64("rows", rowsAffected(result)))
	}

	result, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM recipes WHERE author_id = $1`), accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete authored recipes: %w", s.dialect.ClassifyError(err))
	}
	return rowsAffected(result), nil
}
