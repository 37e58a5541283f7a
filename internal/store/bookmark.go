package store

import (
	"context"
	"database/sql"
)

// BookmarkStore persists bookmarks. A row's existence is the bookmarked state.
type BookmarkStore interface {
	// Exists reports whether accountID has bookmarked recipeID.
	Exists(ctx context.Context, accountID, recipeID int64) (bool, error)

	// Insert creates a bookmark. Returns ErrBookmarkExists if it already exists.
	Insert(ctx context.Context, accountID, recipeID int64) error

	// Delete removes a bookmark. Returns ErrNotFound if there was none.
	Delete(ctx context.Context, accountID, recipeID int64) error

	// DeleteByAccount removes every bookmark held by accountID.
	DeleteByAccount(ctx context.Context, accountID int64) (int64, error)

	// WithTx returns a new BookmarkStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) BookmarkStore
}
