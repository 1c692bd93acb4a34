package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dukapos/duka/internal/server/handlers"
	"github.com/dukapos/duka/internal/server/middleware"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Logger  *slog.Logger
	Auth    *handlers.AuthHandler
	Sync    *handlers.SyncHandler
	Health  *handlers.HealthHandler
	Tokens  middleware.TokenValidator
	Limiter *middleware.RateLimiter
}

// NewRouter wires middleware and routes. Auth endpoints are rate limited,
// sync endpoints require a Bearer token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.LoggingMiddleware(deps.Logger))

	r.Get("/api/v1/health", deps.Health.Health)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(deps.Limiter.Middleware)
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
	})

	r.Route("/api/v1/sync", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(deps.Logger, deps.Tokens))
		r.Get("/{collection}", deps.Sync.Pull)
		r.Post("/{collection}", deps.Sync.Push)
	})

	return r
}
