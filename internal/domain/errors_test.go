package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDefaultStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *Error
		kind   error
		status int
	}{
		{"not found", NotFound("account"), ErrNotFound, http.StatusNotFound},
		{"invalid credential", InvalidCredential("bad password"), ErrInvalidCredential, http.StatusBadRequest},
		{"invalid request", InvalidRequest("mismatch"), ErrInvalidRequest, http.StatusBadRequest},
		{"conflict", Conflict("already liked", nil), ErrConflict, http.StatusConflict},
		{"delete failed", DeleteFailed(errors.New("db down")), ErrDeleteFailed, http.StatusInternalServerError},
		{"validation", ValidationFailed(map[string]string{"password": "required"}), ErrValidationFailed, http.StatusBadRequest},
		{"unauthenticated", NewError(ErrUnauthenticated, "", nil), ErrUnauthenticated, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.Equal(t, tt.status, tt.err.StatusCode())
		})
	}
}

func TestErrorWithStatusOverride(t *testing.T) {
	t.Parallel()

	base := InvalidCredential("not yours")
	forbidden := base.WithStatus(http.StatusForbidden)

	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode())
	assert.Equal(t, http.StatusBadRequest, base.StatusCode(), "override must not mutate the original")
	assert.True(t, errors.Is(forbidden, ErrInvalidCredential))
}

func TestErrorUnwrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("constraint fk_recipes_author")
	err := fmt.Errorf("delete account: %w", DeleteFailed(cause))

	assert.True(t, errors.Is(err, ErrDeleteFailed))
	assert.True(t, errors.Is(err, cause))

	derr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "failed to delete account", derr.Message)
	assert.Contains(t, derr.Error(), "constraint fk_recipes_author")
}

func TestAsErrorPlainError(t *testing.T) {
	t.Parallel()

	_, ok := AsError(errors.New("plain"))
	assert.False(t, ok)
}
