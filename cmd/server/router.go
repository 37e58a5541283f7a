package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/recipe-api/internal/api"
	apiMiddleware "github.com/phrazzld/recipe-api/internal/api/middleware"
	"github.com/phrazzld/recipe-api/internal/api/shared"
)

// setupRouter creates the API router. Every request passes the authorization
// gate before routing, so a route missing from the policy table is
// authenticated no matter how it is registered here.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.WithBaseLogger(app.logger))
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORS(app.config.CORS))

	gate := apiMiddleware.NewGate(app.policy, app.jwtService, app.metrics, app.logger)
	r.Use(gate.Authorize)

	authHandler := api.NewAuthHandler(app.accounts, app.jwtService, app.logger)
	accountHandler := api.NewAccountHandler(app.accounts)
	recipeHandler := api.NewRecipeHandler(app.bookmarks, app.likes, app.references)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Get("/check-id", authHandler.CheckID)
			r.Get("/check-nickname", authHandler.CheckNickname)
			r.Post("/find-id", authHandler.FindID)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/me", accountHandler.Me)
			r.Patch("/password", accountHandler.ChangePassword)
			r.Delete("/delete", accountHandler.Delete)
		})

		r.Route("/details", func(r chi.Router) {
			r.Post("/bookmarks", recipeHandler.ToggleBookmark)
			r.Get("/bookmarks/{recipeId}", recipeHandler.BookmarkStatus)
			r.Post("/likes", recipeHandler.Like)
			r.Post("/completion", recipeHandler.Complete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// setupMetricsRouter serves /health and the Prometheus endpoint. It sits on a
// separate listener outside the gate.
func (app *application) setupMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", app.health)
	path := app.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	r.Handle(path, app.metrics.Handler())
	return r
}

// health reports 200 while the database answers a ping.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
