package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrConstraintViolation is returned for integrity violations other than uniqueness,
	// such as a foreign key still referencing a row.
	ErrConstraintViolation = errors.New("integrity constraint violation")

	// ErrInvalidEntity is returned when an entity fails validation before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrRecipeNotFound indicates that the requested recipe does not exist.
	ErrRecipeNotFound = fmt.Errorf("%w: recipe", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrLoginExists indicates that an account with the given login already exists.
	ErrLoginExists = fmt.Errorf("%w: login", ErrDuplicate)

	// ErrNicknameExists indicates that an account with the given nickname already exists.
	ErrNicknameExists = fmt.Errorf("%w: nickname", ErrDuplicate)

	// ErrEmailExists indicates that an account with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrLikeExists indicates the account already liked the recipe (uq_recipe_like).
	ErrLikeExists = fmt.Errorf("%w: like", ErrDuplicate)

	// ErrBookmarkExists indicates the account already bookmarked the recipe.
	ErrBookmarkExists = fmt.Errorf("%w: bookmark", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a store error with the entity and operation that produced it.
type StoreError struct {
	Entity    string // The entity type (e.g., "account", "bookmark")
	Operation string // The operation that failed (e.g., "create", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
