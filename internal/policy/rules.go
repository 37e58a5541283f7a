package policy

import "net/http"

// DefaultRules returns the recipe API route policy in declaration order.
func DefaultRules() []Rule {
	return []Rule{
		// Preflight requests carry no credentials.
		{Method: http.MethodOptions, Patterns: []string{"/**"}, Decision: Public},
		{Method: http.MethodGet, Patterns: []string{"/", "/error", "/images/**"}, Decision: Public},
		{Method: AnyMethod, Patterns: []string{"/auth/**", "/api/auth/**"}, Decision: Public},
		{
			Method:   http.MethodGet,
			Patterns: []string{"/api/mainPages", "/api/search/**", "/api/recipes/**", "/api/details/**"},
			Decision: Public,
		},
		{
			Method:   AnyMethod,
			Patterns: []string{"/api/admin/**", "/batch/**", "/swagger-ui/**", "/v3/api-docs/**", "/test/**"},
			Decision: Public,
			DevOnly:  true,
		},
		{Method: AnyMethod, Patterns: []string{"/user/**"}, Decision: Authenticated},
		{
			Method: http.MethodPost,
			Patterns: []string{
				"/api/recipes/write", "/api/details/likes", "/api/details/bookmarks", "/api/details/completion",
			},
			Decision: Authenticated,
		},
		{
			Method: AnyMethod,
			Patterns: []string{
				"/api/recommendations/**", "/api/users/**", "/api/user/**", "/api/mypages/**", "/api/mypage/**",
			},
			Decision: Authenticated,
		},
	}
}

// NewDefaultTable compiles DefaultRules.
func NewDefaultTable(opts Options) *Table {
	return MustCompile(DefaultRules(), opts)
}
