package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/recipe-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account and sets its ID.
	// Returns ErrLoginExists, ErrNicknameExists or ErrEmailExists on conflicts.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its numeric ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// GetByLogin retrieves an account by its login handle.
	GetByLogin(ctx context.Context, login string) (*domain.Account, error)

	// GetByEmail retrieves an account by its (lowercased) email address.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// LockByID retrieves an account and holds a row lock on it until the
	// surrounding transaction ends. Only meaningful on a store bound with WithTx.
	LockByID(ctx context.Context, id int64) (*domain.Account, error)

	// LockByLogin is LockByID keyed by login.
	LockByLogin(ctx context.Context, login string) (*domain.Account, error)

	// UpdatePasswordHash overwrites the stored password hash.
	// Returns ErrAccountNotFound if no row was updated.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error

	// Delete removes the account row. Dependent rows must already be gone.
	// Returns ErrAccountNotFound if no row was deleted.
	Delete(ctx context.Context, id int64) error

	// LoginExists reports whether an account uses login.
	LoginExists(ctx context.Context, login string) (bool, error)

	// NicknameExists reports whether an account uses nickname.
	NicknameExists(ctx context.Context, nickname string) (bool, error)

	// WithTx returns a new AccountStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AccountStore
}
