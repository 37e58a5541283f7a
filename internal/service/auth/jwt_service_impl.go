package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
)

const (
	issuer       = "recipe-api"
	bearerScheme = "Bearer"
	minSecretLen = 32
)

// hmacJWTService is an implementation of JWTService using HMAC-SHA256 signing.
type hmacJWTService struct {
	signingKey           []byte
	tokenLifetime        time.Duration
	refreshTokenLifetime time.Duration
	resetTokenLifetime   time.Duration
	clockSkew            time.Duration
	timeFunc             func() time.Time // Injectable for testing
}

// jwtCustomClaims defines the structure of JWT claims we use
type jwtCustomClaims struct {
	Login     string `json:"login,omitempty"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a new JWT service using HMAC-SHA256 signing.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	return newHMACJWTService(cfg, time.Now)
}

func newHMACJWTService(cfg config.AuthConfig, timeFunc func() time.Time) (*hmacJWTService, error) {
	if len(cfg.JWTSecret) < minSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLen)
	}
	if cfg.TokenLifetimeMinutes <= 0 || cfg.RefreshTokenLifetimeMinutes <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	resetLifetime := time.Duration(cfg.ResetTokenLifetimeMinutes) * time.Minute
	if resetLifetime <= 0 {
		resetLifetime = 15 * time.Minute
	}

	return &hmacJWTService{
		signingKey:           []byte(cfg.JWTSecret),
		tokenLifetime:        time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		refreshTokenLifetime: time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
		resetTokenLifetime:   resetLifetime,
		clockSkew:            cfg.ClockSkew,
		timeFunc:             timeFunc,
	}, nil
}

// GenerateToken creates a signed access token.
func (s *hmacJWTService) GenerateToken(ctx context.Context, id Identity) (string, error) {
	return s.sign(ctx, jwtCustomClaims{
		Login:            id.Login,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: s.registered(strconv.FormatInt(id.AccountID, 10), s.tokenLifetime),
	})
}

// GenerateRefreshToken creates a signed refresh token.
func (s *hmacJWTService) GenerateRefreshToken(ctx context.Context, id Identity) (string, error) {
	return s.sign(ctx, jwtCustomClaims{
		Login:            id.Login,
		TokenType:        TokenTypeRefresh,
		RegisteredClaims: s.registered(strconv.FormatInt(id.AccountID, 10), s.refreshTokenLifetime),
	})
}

// GenerateResetToken creates a signed password reset token for email.
func (s *hmacJWTService) GenerateResetToken(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errors.New("reset token requires an email")
	}
	return s.sign(ctx, jwtCustomClaims{
		Email:            email,
		TokenType:        TokenTypeReset,
		RegisteredClaims: s.registered(TokenTypeReset, s.resetTokenLifetime),
	})
}

// ResolveIdentity extracts the bearer token from an Authorization header value and
// returns the identity of a valid access token.
func (s *hmacJWTService) ResolveIdentity(ctx context.Context, header string) (Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" || strings.EqualFold(header, bearerScheme) {
		return Identity{}, ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return Identity{}, ErrMalformedToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrMissingToken
	}

	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	return claims.Identity(), nil
}

// ValidateToken validates an access token and returns its claims.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.validate(ctx, tokenString, TokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *hmacJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.validate(ctx, tokenString, TokenTypeRefresh)
}

// ValidateResetToken validates a reset token and returns its email.
func (s *hmacJWTService) ValidateResetToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.validate(ctx, tokenString, TokenTypeReset)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", ErrMalformedToken
	}
	return claims.Email, nil
}

func (s *hmacJWTService) registered(subject string, lifetime time.Duration) jwt.RegisteredClaims {
	now := s.timeFunc()
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		ID:        uuid.New().String(),
	}
}

func (s *hmacJWTService) sign(ctx context.Context, claims jwtCustomClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		logger.FromContextOrDefault(ctx, nil).Error("failed to sign JWT",
			"error", err,
			"token_type", claims.TokenType,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign %s token with HMAC-SHA256: %w", claims.TokenType, err)
	}
	return signed, nil
}

func (s *hmacJWTService) validate(ctx context.Context, tokenString, wantType string) (*Claims, error) {
	log := logger.FromContextOrDefault(ctx, nil)
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		mapped := mapParseError(err)
		log.Debug("token validation failed",
			"reason", Reason(mapped),
			"token_type", wantType,
			"error", err)
		return nil, mapped
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}
	if claims.TokenType != wantType {
		log.Debug("token validation failed: wrong token type",
			"expected", wantType,
			"actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	out := &Claims{
		Login:     claims.Login,
		Email:     claims.Email,
		TokenType: claims.TokenType,
		Subject:   claims.Subject,
		ID:        claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	if wantType != TokenTypeReset {
		accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || accountID <= 0 {
			return nil, ErrInvalidSubject
		}
		out.AccountID = accountID
	}

	return out, nil
}

// mapParseError converts jwt library errors into this package's sentinels.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrTokenNotYetValid
	default:
		return ErrMalformedToken
	}
}
