package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/recipe-api/internal/api"
	"github.com/phrazzld/recipe-api/internal/api/shared"
	"github.com/phrazzld/recipe-api/internal/mocks"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// handlers bundles the mocks behind a router wired like the server's.
type handlers struct {
	accounts   *mocks.MockAccountService
	jwt        *mocks.MockJWTService
	bookmarks  *mocks.MockBookmarkService
	likes      *mocks.MockLikeService
	references *mocks.MockReferenceService
}

func newHandlers() *handlers {
	return &handlers{
		accounts:   &mocks.MockAccountService{},
		jwt:        &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"},
		bookmarks:  &mocks.MockBookmarkService{},
		likes:      &mocks.MockLikeService{},
		references: &mocks.MockReferenceService{},
	}
}

func (h *handlers) router() http.Handler {
	l, _ := logger.NewTestLogger()
	authHandler := api.NewAuthHandler(h.accounts, h.jwt, l)
	accountHandler := api.NewAccountHandler(h.accounts)
	recipeHandler := api.NewRecipeHandler(h.bookmarks, h.likes, h.references)

	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Get("/check-id", authHandler.CheckID)
		r.Get("/check-nickname", authHandler.CheckNickname)
		r.Post("/find-id", authHandler.FindID)
		r.Post("/reset-password", authHandler.ResetPassword)
	})
	r.Route("/api/user", func(r chi.Router) {
		r.Get("/me", accountHandler.Me)
		r.Patch("/password", accountHandler.ChangePassword)
		r.Delete("/delete", accountHandler.Delete)
	})
	r.Route("/api/details", func(r chi.Router) {
		r.Post("/bookmarks", recipeHandler.ToggleBookmark)
		r.Get("/bookmarks/{recipeId}", recipeHandler.BookmarkStatus)
		r.Post("/likes", recipeHandler.Like)
		r.Post("/completion", recipeHandler.Complete)
	})
	return r
}

var alice = auth.Identity{AccountID: 7, Login: "alice"}

// do sends a request with an optional JSON body and, when id is non-nil, a
// bound identity as the gate would leave it.
func (h *handlers) do(t *testing.T, method, path string, body any, id *auth.Identity) *httptest.ResponseRecorder {
	t.Helper()
	return h.send(t, method, path, body, id, nil)
}

// doWithHeader sends an anonymous request carrying one extra header, skipped when value is empty.
func (h *handlers) doWithHeader(t *testing.T, method, path string, body any, key, value string) *httptest.ResponseRecorder {
	t.Helper()
	headers := map[string]string{}
	if value != "" {
		headers[key] = value
	}
	return h.send(t, method, path, body, nil, headers)
}

func (h *handlers) send(
	t *testing.T, method, path string, body any, id *auth.Identity, headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if id != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	h.router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	return decode[shared.ErrorResponse](t, rec)
}
