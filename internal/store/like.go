package store

import (
	"context"
	"database/sql"
)

// LikeStore persists likes.
type LikeStore interface {
	// Insert records a like. Returns ErrLikeExists when the pair is already liked.
	Insert(ctx context.Context, accountID, recipeID int64) error

	// DeleteByAccount removes every like given by accountID.
	DeleteByAccount(ctx context.Context, accountID int64) (int64, error)

	// WithTx returns a new LikeStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) LikeStore
}
