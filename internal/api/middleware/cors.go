package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/phrazzld/recipe-api/internal/config"
)

// CORS allows the single configured front-end origin with credentials, and
// exposes the headers that carry tokens back to the browser.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodPatch,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Authorization", "Refresh-Token"},
		AllowCredentials: true,
		MaxAge:           3600,
	})
}
