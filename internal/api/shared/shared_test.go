package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
}

type sampleRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RecipeID int64  `json:"recipeId" validate:"gt=0"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
			`{"email":"a@example.com","password":"longenough","recipeId":3}`))
		var req sampleRequest
		require.NoError(t, DecodeJSON(r, &req))
		require.NoError(t, ValidateRequest(req))
		assert.Equal(t, int64(3), req.RecipeID)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var req sampleRequest
		assert.ErrorIs(t, DecodeJSON(r, &req), ErrEmptyBody)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var req sampleRequest
		assert.Error(t, DecodeJSON(r, &req))
	})

	t.Run("field errors use json names", func(t *testing.T) {
		t.Parallel()
		err := ValidateRequest(sampleRequest{Email: "nope", Password: "short"})
		require.Error(t, err)
		assert.Equal(t, map[string]string{
			"email":    "must be a valid email address",
			"password": "must be at least 8 characters long",
			"recipeId": "must be greater than 0",
		}, ValidationFields(err))
	})

	t.Run("non validation error", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ValidationFields(errors.New("x")))
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger()
	ctx := logger.WithLogger(context.Background(), log)
	ctx = logger.WithTraceID(ctx, "trace-123")

	r := httptest.NewRequest(http.MethodPost, "/api/user/password", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred",
		errors.New("dial postgres://app:hunter2@db:5432/recipes: refused"),
		WithFields(map[string]string{"x": "y"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "An unexpected error occurred", body.Error)
	assert.Equal(t, "trace-123", body.TraceID)
	assert.Equal(t, map[string]string{"x": "y"}, body.Fields)
	assert.NotContains(t, w.Body.String(), "hunter2")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Equal(t, "trace-123", entries[0]["trace_id"])
	assert.NotContains(t, buf.String(), "hunter2")
}
