package api

import (
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics with bounded cardinality (no per-battle labels, to keep the
// series count independent of how many battles have ever been played).
var (
	turnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "battle_turn_duration_seconds",
		Help:    "Time spent resolving one turn",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	turnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "battle_turns_total",
		Help: "Total turns resolved across all battles",
	})

	faintsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "battle_faints_total",
		Help: "Total creature faints across all battles",
	})

	openBattles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "battle_open_count",
		Help: "Currently tracked open battles",
	})

	catchAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catch_attempts_total",
		Help: "Total catch attempts by outcome",
	}, []string{"outcome"}) // bounded: "success", "failure"

	connectionRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connection_rejected_total",
		Help: "Connections rejected by rate limiter or origin check",
	}, []string{"reason"}) // bounded: "rate_limit", "origin", "ws_ip_limit", "ws_total_limit"

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "websocket_connections_active",
		Help: "Currently active WebSocket connections",
	})

	wsMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "websocket_messages_total",
		Help: "Total WebSocket messages sent",
	})
)

// ObservabilityConfig configures the debug/metrics server.
type ObservabilityConfig struct {
	Enabled    bool
	ListenAddr string // MUST be loopback in production
}

// DefaultObservabilityConfig returns safe defaults.
func DefaultObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		Enabled:    true,
		ListenAddr: "127.0.0.1:6060",
	}
}

// StartDebugServer starts the internal observability server. It MUST bind
// to localhost only to prevent pprof-based DoS.
func StartDebugServer(cfg ObservabilityConfig) error {
	if !cfg.Enabled {
		log.Println("metrics server disabled")
		return nil
	}

	if cfg.ListenAddr != "127.0.0.1:6060" && cfg.ListenAddr != "localhost:6060" {
		if os.Getenv("ALLOW_DEBUG_EXTERNAL") != "true" {
			log.Println("debug server forced to localhost for security")
			cfg.ListenAddr = "127.0.0.1:6060"
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	go func() {
		log.Printf("metrics server starting on %s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()

	return nil
}

// RecordTurn records turn timing and increments the turn counter.
func RecordTurn(duration time.Duration) {
	turnDuration.Observe(duration.Seconds())
	turnsTotal.Inc()
}

// RecordFaints increments the faint counter by count.
func RecordFaints(count int) {
	for i := 0; i < count; i++ {
		faintsTotal.Inc()
	}
}

// UpdateOpenBattles updates the open-battle gauge.
func UpdateOpenBattles(count int) {
	openBattles.Set(float64(count))
}

// RecordCatchAttempt records a catch attempt outcome ("success"/"failure").
func RecordCatchAttempt(outcome string) {
	catchAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordConnectionRejected increments the rejection counter. reason must be
// one of: "rate_limit", "origin", "ws_ip_limit", "ws_total_limit".
func RecordConnectionRejected(reason string) {
	connectionRejected.WithLabelValues(reason).Inc()
}

// RecordRequest records HTTP request metrics.
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	requestTotal.WithLabelValues(method, endpoint, http.StatusText(status)).Inc()
}

// UpdateWSConnections updates WebSocket connection count.
func UpdateWSConnections(count int) {
	wsConnectionsActive.Set(float64(count))
}

// IncrementWSMessages increments WebSocket message counter.
func IncrementWSMessages() {
	wsMessagesTotal.Inc()
}
