package domain

import "time"

// Recipe is a recipe authored by an account.
type Recipe struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Like records that an account liked a recipe. The pair is unique.
type Like struct {
	AccountID int64
	RecipeID  int64
	CreatedAt time.Time
}

// Bookmark records that an account bookmarked a recipe.
// The row's existence is the bookmarked state; there is no flag column.
type Bookmark struct {
	AccountID int64
	RecipeID  int64
	CreatedAt time.Time
}

// ReferenceKind classifies a UserReference.
type ReferenceKind string

// Reference kinds.
const (
	ReferenceCompletion ReferenceKind = "completion"
)

// UserReference is a record that an account interacted with a recipe,
// such as completing it.
type UserReference struct {
	ID        int64
	AccountID int64
	RecipeID  int64
	Kind      ReferenceKind
	CreatedAt time.Time
}
