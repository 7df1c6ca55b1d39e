package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/config"
)

// RouterConfig contains all dependencies needed to construct the HTTP
// router. Designed for dependency injection and testability.
//
// Example usage in tests:
//
//	cfg := api.RouterConfig{Manager: battle.NewManager(0)}
//	router := api.NewRouter(cfg, srv)
//	ts := httptest.NewServer(router)
type RouterConfig struct {
	// Manager tracks every open battle (required).
	Manager *battle.Manager

	// RateLimiter is an optional pre-configured rate limiter. If nil, one
	// is constructed from config.DefaultRateLimit.
	RateLimiter *IPRateLimiter

	// CORSOrigins is an optional list of allowed CORS origins. If nil,
	// uses the default localhost-only origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for
	// benchmarks and tests).
	DisableLogging bool
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// This function is pure: it opens no network listeners beyond what
// RateLimiter already owns (its cleanup goroutine), so it is safe to use
// directly with httptest.NewServer.
func NewRouter(cfg RouterConfig, srv *Server) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimiter = NewIPRateLimiter(config.DefaultRateLimit())
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = AllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/battles", func(r chi.Router) {
		r.Post("/", srv.handleCreateBattle)
		r.Get("/{id}", srv.handleGetBattle)
		r.Post("/{id}/actions", srv.handleSubmitAction)
		r.Post("/{id}/replacement", srv.handleSubmitReplacement)
		r.Get("/{id}/events", srv.handleGetEvents)
		r.Get("/{id}/ws", srv.handleBattleWS)
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
