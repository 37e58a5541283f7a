package mocks

import (
	"context"

	"github.com/phrazzld/recipe-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, id auth.Identity) (string, error)
	GenerateRefreshTokenFn func(ctx context.Context, id auth.Identity) (string, error)
	GenerateResetTokenFn   func(ctx context.Context, email string) (string, error)
	ResolveIdentityFn      func(ctx context.Context, header string) (auth.Identity, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
	ValidateResetTokenFn   func(ctx context.Context, tokenString string) (string, error)

	// Default values used when functions aren't explicitly defined
	Token        string
	RefreshToken string
	Err          error
	ValidateErr  error
	Claims       *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, id auth.Identity) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, id)
	}
	return m.Token, m.Err
}

// GenerateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, id auth.Identity) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, id)
	}
	return m.RefreshToken, m.Err
}

// GenerateResetToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateResetToken(ctx context.Context, email string) (string, error) {
	if m.GenerateResetTokenFn != nil {
		return m.GenerateResetTokenFn(ctx, email)
	}
	return m.Token, m.Err
}

// ResolveIdentity implements the auth.JWTService interface. Without ResolveIdentityFn
// it resolves to Claims' identity, or fails with ValidateErr.
func (m *MockJWTService) ResolveIdentity(ctx context.Context, header string) (auth.Identity, error) {
	if m.ResolveIdentityFn != nil {
		return m.ResolveIdentityFn(ctx, header)
	}
	if m.ValidateErr != nil {
		return auth.Identity{}, m.ValidateErr
	}
	if m.Claims == nil {
		return auth.Identity{}, auth.ErrMissingToken
	}
	return m.Claims.Identity(), nil
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// ValidateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// ValidateResetToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateResetToken(ctx context.Context, tokenString string) (string, error) {
	if m.ValidateResetTokenFn != nil {
		return m.ValidateResetTokenFn(ctx, tokenString)
	}
	if m.Claims != nil {
		return m.Claims.Email, m.ValidateErr
	}
	return "", m.ValidateErr
}
