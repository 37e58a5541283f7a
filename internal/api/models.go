package api

import "time"

// RegisterRequest defines the payload for account registration.
// "id" is the login handle, kept under its wire name.
type RegisterRequest struct {
	Login    string `json:"id"       validate:"required,max=50"`
	Nickname string `json:"nickname" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Login    string `json:"id"       validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register, login and refresh. The tokens are also
// sent in the Authorization and Refresh-Token response headers.
type AuthResponse struct {
	AccountID    int64  `json:"accountId"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// ExistsResponse answers the check-id and check-nickname endpoints.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// FindIDRequest defines the payload for login recovery by email.
type FindIDRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// FindIDResponse carries the recovered login.
type FindIDResponse struct {
	Login string `json:"id"`
}

// ResetPasswordRequest defines the payload for a password reset.
// ResetToken is a signed reset token naming the account's email.
type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken"      validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ChangePasswordRequest defines the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// DeleteAccountRequest defines the payload for account deletion.
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// RecipeRequest names the recipe a like, bookmark or completion applies to.
type RecipeRequest struct {
	RecipeID int64 `json:"recipeId" validate:"gt=0"`
}

// AccountResponse is the caller's profile.
type AccountResponse struct {
	AccountID int64     `json:"accountId"`
	Login     string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookmarkResponse reports a bookmark state.
type BookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

// CompletionResponse reports a recorded completion.
type CompletionResponse struct {
	ReferenceID int64 `json:"referenceId"`
	RecipeID    int64 `json:"recipeId"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
