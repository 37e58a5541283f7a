package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/store"
)

// integrityViolation is returned for constraint failures the caller cannot fix by
// changing its request, such as a recipe removed between lookup and insert.
func integrityViolation(err error) *domain.Error {
	return domain.NewError(domain.ErrConflict, "data integrity violation", err).
		WithStatus(http.StatusServiceUnavailable)
}

// lookupError converts a store lookup failure into a domain error.
// Not-found errors become NOT_FOUND for entity; anything else is wrapped with op.
func lookupError(entity, op string, err error) error {
	if store.IsNotFoundError(err) {
		return domain.NotFound(entity)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// isDomainError reports whether err already carries a domain kind.
func isDomainError(err error) bool {
	var derr *domain.Error
	return errors.As(err, &derr)
}

// Stores bundles the stores the services depend on.
type Stores struct {
	Accounts   store.AccountStore
	Recipes    store.RecipeStore
	Likes      store.LikeStore
	Bookmarks  store.BookmarkStore
	References store.ReferenceStore
}
