package auth

import (
	"context"
	"time"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

// JWTService defines operations for issuing and verifying signed tokens.
// Verification is a pure function of the token and the configured key; nothing is
// looked up in storage.
type JWTService interface {
	// GenerateToken creates a signed access token for the identity.
	GenerateToken(ctx context.Context, id Identity) (string, error)

	// GenerateRefreshToken creates a signed refresh token with the longer refresh lifetime.
	GenerateRefreshToken(ctx context.Context, id Identity) (string, error)

	// GenerateResetToken creates a short-lived token authorizing a password reset for email.
	GenerateResetToken(ctx context.Context, email string) (string, error)

	// ResolveIdentity decodes the raw Authorization header value ("Bearer <token>")
	// and returns the identity carried by a valid access token.
	ResolveIdentity(ctx context.Context, header string) (Identity, error)

	// ValidateToken validates a bare access token and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateRefreshToken validates a bare refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateResetToken validates a reset token and returns the email it was issued for.
	ValidateResetToken(ctx context.Context, tokenString string) (string, error)
}

// Claims is the verified content of a token.
type Claims struct {
	AccountID int64
	Login     string
	Email     string
	TokenType string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity returns the identity described by access or refresh claims.
func (c *Claims) Identity() Identity {
	return Identity{AccountID: c.AccountID, Login: c.Login}
}
