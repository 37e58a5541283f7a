package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/recipe-api/internal/api/shared"
	"github.com/phrazzld/recipe-api/internal/metrics"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/policy"
	"github.com/phrazzld/recipe-api/internal/service/auth"
)

// IdentityResolver turns an Authorization header value into an identity.
// auth.JWTService satisfies it.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, header string) (auth.Identity, error)
}

// Gate authorizes every request against the route policy table before routing.
// It keeps no state between requests.
type Gate struct {
	table    *policy.Table
	resolver IdentityResolver
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewGate creates a Gate. m may be nil.
func NewGate(table *policy.Table, resolver IdentityResolver, m *metrics.Metrics, logger *slog.Logger) *Gate {
	return &Gate{
		table:    table,
		resolver: resolver,
		metrics:  m,
		logger:   logger.With(slog.String("component", "gate")),
	}
}

// Decide returns the policy decision for a request.
func (g *Gate) Decide(method, path string) policy.Decision {
	return g.table.Decide(method, path)
}

// Authorize is the gate middleware.
//
// PUBLIC requests always pass; a valid bearer token still binds its identity so
// public handlers can personalize, and an invalid one is ignored. AUTHENTICATED
// requests pass only when the bearer token resolves, and are answered with 401
// otherwise.
func (g *Gate) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContextOrDefault(ctx, g.logger)

		match := g.table.Lookup(r.Method, r.URL.Path)
		header := r.Header.Get("Authorization")

		if match.Decision == policy.Public {
			if header != "" {
				if id, err := g.resolver.ResolveIdentity(ctx, header); err == nil {
					ctx = bindIdentity(ctx, log, id)
				} else {
					log.Debug("ignoring unusable token on public route",
						slog.String("reason", auth.Reason(err)),
						slog.String("path", r.URL.Path))
				}
			}
			g.metrics.ObserveGate(match.Decision.String(), true)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		id, err := g.resolver.ResolveIdentity(ctx, header)
		if err != nil {
			reason := auth.Reason(err)
			g.metrics.ObserveGate(match.Decision.String(), false)
			g.metrics.ObserveAuthFailure(reason)
			log.Info("request denied",
				slog.String("reason", reason),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("rule", match.Index))
			w.Header().Set("WWW-Authenticate", `Bearer realm="recipe-api"`)
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		g.metrics.ObserveGate(match.Decision.String(), true)
		next.ServeHTTP(w, r.WithContext(bindIdentity(ctx, log, id)))
	})
}

func bindIdentity(ctx context.Context, log *slog.Logger, id auth.Identity) context.Context {
	ctx = auth.WithIdentity(ctx, id)
	return logger.WithLogger(ctx, log.With(slog.Int64("account_id", id.AccountID)))
}
