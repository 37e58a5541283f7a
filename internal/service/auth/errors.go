package auth

import (
	"errors"
	"fmt"
)

// Identity resolution failures. The gate treats all of them as unauthenticated,
// but they stay distinct so the reason can be logged.
var (
	// ErrMissingToken indicates no bearer token was presented
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedToken indicates the header or token structure could not be decoded
	ErrMalformedToken = errors.New("authentication token is malformed")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrBadSignature indicates the token signature does not verify under the configured key
	ErrBadSignature = errors.New("authentication token signature is invalid")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrWrongTokenType indicates a well-formed token issued for another purpose,
	// such as a refresh token presented as an access token. It wraps ErrMalformedToken.
	ErrWrongTokenType = fmt.Errorf("%w: wrong token type", ErrMalformedToken)

	// ErrInvalidSubject indicates the subject claim is not a positive account id.
	// It wraps ErrMalformedToken.
	ErrInvalidSubject = fmt.Errorf("%w: invalid subject", ErrMalformedToken)
)

// Reason returns a short diagnostic label for an identity resolution error.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingToken):
		return "missing_token"
	case errors.Is(err, ErrExpiredToken):
		return "expired_token"
	case errors.Is(err, ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, ErrTokenNotYetValid):
		return "not_yet_valid"
	case errors.Is(err, ErrWrongTokenType):
		return "wrong_token_type"
	default:
		return "malformed_token"
	}
}
