package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/recipe-api/internal/api"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/service/auth"
	"github.com/phrazzld/recipe-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"domain not found", domain.NotFound("recipe"), http.StatusNotFound, "recipe not found"},
		{"wrapped domain error", fmt.Errorf("toggle: %w", domain.Conflict("already liked", nil)), http.StatusConflict, "already liked"},
		{"delete failed", domain.DeleteFailed(errors.New("boom")), http.StatusInternalServerError, "failed to delete account"},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, "Token expired"},
		{"bad signature", auth.ErrBadSignature, http.StatusUnauthorized, "Invalid token"},
		{"store not found", fmt.Errorf("get: %w", store.ErrRecipeNotFound), http.StatusNotFound, "recipe not found"},
		{"store duplicate", store.ErrDuplicate, http.StatusConflict, "already exists"},
		{"store constraint", store.ErrConstraintViolation, http.StatusServiceUnavailable, "data integrity violation"},
		{"cancelled before transaction", fmt.Errorf("transaction not started: %w", context.Canceled), http.StatusRequestTimeout, "request cancelled"},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusRequestTimeout, "request cancelled"},
		{"unknown", errors.New("pq: relation \"accounts\" does not exist"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, api.MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMessage, api.GetSafeErrorMessage(tt.err))
		})
	}
}
