package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/recipe-api/internal/api/shared"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/service/auth"
	"github.com/phrazzld/recipe-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes.
// Domain errors carry their own status; store and token errors that escape a
// service are classified by kind. Everything else is a 500.
func MapErrorToStatusCode(err error) int {
	if derr, ok := domain.AsError(err); ok {
		return derr.StatusCode()
	}

	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout

	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrBadSignature),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, store.ErrConstraintViolation):
		return http.StatusServiceUnavailable

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}
	if derr, ok := domain.AsError(err); ok && derr.Message != "" {
		return derr.Message
	}

	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return "request cancelled"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrBadSignature),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	case errors.Is(err, store.ErrAccountNotFound):
		return "account not found"
	case errors.Is(err, store.ErrRecipeNotFound):
		return "recipe not found"
	case errors.Is(err, store.ErrNotFound):
		return "not found"
	case errors.Is(err, store.ErrDuplicate):
		return "already exists"
	case errors.Is(err, store.ErrConstraintViolation):
		return "data integrity violation"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	default:
		return "An unexpected error occurred"
	}
}

// HandleError writes the response for err: its mapped status, its safe message and,
// for validation failures, the per-field messages. The full error is logged redacted.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var opts []shared.ResponseOption
	if derr, ok := domain.AsError(err); ok && len(derr.Fields) > 0 {
		opts = append(opts, shared.WithFields(derr.Fields))
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}

// decodeAndValidate decodes the JSON body into v and validates it. On failure it
// writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		fields := shared.ValidationFields(err)
		if fields == nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
			return false
		}
		HandleError(w, r, domain.ValidationFailed(fields))
		return false
	}
	return true
}

// identityOrUnauthorized returns the identity bound by the authorization gate.
// It writes a 401 and returns false when the request carries none.
func identityOrUnauthorized(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		HandleError(w, r, domain.NewError(domain.ErrUnauthenticated, "Authentication required", nil))
		return auth.Identity{}, false
	}
	return id, true
}
