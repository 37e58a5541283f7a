package policy

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableDecisions(t *testing.T) {
	t.Parallel()

	prod := NewDefaultTable(Options{})
	dev := NewDefaultTable(Options{DevRoutesEnabled: true})

	tests := []struct {
		name   string
		method string
		path   string
		want   Decision
		wantDv Decision
	}{
		{"preflight on protected path", http.MethodOptions, "/api/user/delete", Public, Public},
		{"root", http.MethodGet, "/", Public, Public},
		{"error page", http.MethodGet, "/error", Public, Public},
		{"nested image", http.MethodGet, "/images/2024/cake.png", Public, Public},
		{"image post is not public", http.MethodPost, "/images/cake.png", Authenticated, Authenticated},
		{"login", http.MethodPost, "/api/auth/login", Public, Public},
		{"auth prefix itself", http.MethodGet, "/api/auth", Public, Public},
		{"legacy auth", http.MethodDelete, "/auth/anything", Public, Public},
		{"main page", http.MethodGet, "/api/mainPages", Public, Public},
		{"recipe detail", http.MethodGet, "/api/recipes/12", Public, Public},
		{"bookmark status read", http.MethodGet, "/api/details/bookmarks/12", Public, Public},
		{"recipe write", http.MethodPost, "/api/recipes/write", Authenticated, Authenticated},
		{"bookmark toggle", http.MethodPost, "/api/details/bookmarks", Authenticated, Authenticated},
		{"like", http.MethodPost, "/api/details/likes", Authenticated, Authenticated},
		{"completion", http.MethodPost, "/api/details/completion", Authenticated, Authenticated},
		{"account delete", http.MethodDelete, "/api/user/delete", Authenticated, Authenticated},
		{"mypage", http.MethodGet, "/api/mypage/recipes", Authenticated, Authenticated},
		{"frontend user route", http.MethodGet, "/user/profile", Authenticated, Authenticated},
		{"admin", http.MethodGet, "/api/admin/stats", Authenticated, Public},
		{"swagger", http.MethodGet, "/swagger-ui/index.html", Authenticated, Public},
		{"unknown path fails closed", http.MethodGet, "/api/unknown", Authenticated, Authenticated},
		{"health falls to default", http.MethodGet, "/health", Authenticated, Authenticated},
		{"dot segments are cleaned", http.MethodDelete, "/api/auth/../user/delete", Authenticated, Authenticated},
		{"lowercase method", "get", "/api/mainPages", Public, Public},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, prod.Decide(tt.method, tt.path), "production table")
			assert.Equal(t, tt.wantDv, dev.Decide(tt.method, tt.path), "development table")
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()

	table := MustCompile([]Rule{
		{Method: http.MethodGet, Patterns: []string{"/api/items/secret"}, Decision: Authenticated},
		{Method: AnyMethod, Patterns: []string{"/api/items/**"}, Decision: Public},
	}, Options{})

	m := table.Lookup(http.MethodGet, "/api/items/secret")
	assert.Equal(t, Authenticated, m.Decision)
	assert.Equal(t, 0, m.Index)

	m = table.Lookup(http.MethodPost, "/api/items/secret")
	assert.Equal(t, Public, m.Decision)
	assert.Equal(t, 1, m.Index)

	m = table.Lookup(http.MethodGet, "/elsewhere")
	assert.Equal(t, Authenticated, m.Decision)
	assert.Equal(t, -1, m.Index)
}

func TestSingleSegmentWildcard(t *testing.T) {
	t.Parallel()

	table := MustCompile([]Rule{
		{Method: AnyMethod, Patterns: []string{"/api/recipes/*/photo"}, Decision: Public},
	}, Options{})

	assert.Equal(t, Public, table.Decide(http.MethodGet, "/api/recipes/3/photo"))
	assert.Equal(t, Authenticated, table.Decide(http.MethodGet, "/api/recipes/3/4/photo"))
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	_, err := Compile([]Rule{{Method: AnyMethod}}, Options{})
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Compile([]Rule{{Method: AnyMethod, Patterns: []string{"  "}}}, Options{})
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Compile([]Rule{{Method: AnyMethod, Patterns: []string{"relative/**"}}}, Options{})
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustCompile([]Rule{{Method: AnyMethod}}, Options{})
	})
}

func TestDevRulesSkippedWhenDisabled(t *testing.T) {
	t.Parallel()

	assert.Equal(t, len(DefaultRules())-1, NewDefaultTable(Options{}).Len())
	assert.Equal(t, len(DefaultRules()), NewDefaultTable(Options{DevRoutesEnabled: true}).Len())
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PUBLIC", Public.String())
	assert.Equal(t, "AUTHENTICATED", Authenticated.String())
	assert.Equal(t, "Decision(7)", Decision(7).String())

	text, err := Public.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "PUBLIC", string(text))
}

func TestDumpDefaultRules(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, DefaultRules()))

	g := goldie.New(t)
	g.Assert(t, "default_table", buf.Bytes())
}
