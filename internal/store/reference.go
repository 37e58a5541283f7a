package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/recipe-api/internal/domain"
)

// ReferenceStore persists user references such as recipe completions.
type ReferenceStore interface {
	// Insert saves a reference and sets its ID.
	Insert(ctx context.Context, ref *domain.UserReference) error

	// DeleteByAccount removes every reference belonging to accountID.
	DeleteByAccount(ctx context.Context, accountID int64) (int64, error)

	// WithTx returns a new ReferenceStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReferenceStore
}
