package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/config"
)

// Server is the HTTP API server with WebSocket support, a thin transport
// adapter over battle.Manager (spec §4.K's façade is the only thing that
// ever touches battle state here).
type Server struct {
	manager     *battle.Manager
	router      *chi.Mux
	rateLimiter *IPRateLimiter

	hubsMu sync.Mutex
	hubs   map[string]*WebSocketHub
}

// NewServer creates a new API server with default production configuration.
//
// Background workers (the rate limiter's cleanup loop) start immediately;
// no network listener opens until Start is called.
func NewServer(manager *battle.Manager, rlCfg config.RateLimitConfig) *Server {
	s := &Server{
		manager: manager,
		hubs:    make(map[string]*WebSocketHub),
	}
	s.rateLimiter = NewIPRateLimiter(rlCfg)
	s.router = NewRouter(RouterConfig{
		Manager:     manager,
		RateLimiter: s.rateLimiter,
	}, s)
	return s
}

// Start begins serving HTTP on addr. Call Stop before process exit.
func (s *Server) Start(addr string) error {
	log.Printf("battle server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Router returns the HTTP handler for use with httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Stop performs graceful shutdown of background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}
