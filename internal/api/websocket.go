package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	// MaxWSConnectionsTotal is the maximum number of WebSocket connections
	// one battle's hub accepts. Each hub counts only its own clients;
	// connections to different battles are not counted together.
	MaxWSConnectionsTotal = 500

	// MaxWSConnectionsPerIP is the maximum WebSocket connections per IP on
	// one battle's hub; each hub keeps its own per-IP counts.
	MaxWSConnectionsPerIP = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if IsAllowedOrigin(origin) {
			return true
		}
		log.Printf("websocket connection rejected from origin: %s", origin)
		RecordConnectionRejected("origin")
		return false
	},
}

// wsClient tracks a WebSocket connection with its source IP.
type wsClient struct {
	conn *websocket.Conn
	ip   string
}

// WebSocketHub streams one battle's events to every subscriber connected to
// it. A Server holds one hub per tracked battle (see Server.hubFor).
type WebSocketHub struct {
	clients   map[*websocket.Conn]*wsClient
	broadcast chan []byte
	mu        sync.RWMutex

	wsLimiter *WebSocketRateLimiter
}

// NewWebSocketHub creates a new hub with per-IP connection limiting.
func NewWebSocketHub() *WebSocketHub {
	h := &WebSocketHub{
		clients:   make(map[*websocket.Conn]*wsClient),
		broadcast: make(chan []byte, 256),
		wsLimiter: NewWebSocketRateLimiter(MaxWSConnectionsPerIP),
	}
	go h.run()
	return h
}

func (h *WebSocketHub) run() {
	for message := range h.broadcast {
		h.mu.RLock()
		for conn := range h.clients {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				go h.disconnect(conn)
			}
		}
		h.mu.RUnlock()
		IncrementWSMessages()
	}
}

func (h *WebSocketHub) disconnect(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[conn]; ok {
		h.wsLimiter.Release(client.ip)
		delete(h.clients, conn)
		conn.Close()
	}
}

// BroadcastEvents pushes a turn's events to every subscriber of this hub.
func (h *WebSocketHub) BroadcastEvents(events []battleEventJSON) {
	if len(events) == 0 {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{"events": events})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		// channel full: drop rather than block the turn that produced this
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *WebSocketHub) totalConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket upgrades the request and registers the connection with
// this hub, enforcing total and per-IP connection ceilings.
func (h *WebSocketHub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ip := GetClientIP(r)

	if h.totalConnections() >= MaxWSConnectionsTotal {
		RecordConnectionRejected("ws_total_limit")
		http.Error(w, "Too many connections", http.StatusServiceUnavailable)
		return
	}
	if !h.wsLimiter.Allow(ip) {
		RecordConnectionRejected("ws_ip_limit")
		http.Error(w, "Too many connections from your IP", http.StatusTooManyRequests)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.wsLimiter.Release(ip)
		return
	}

	client := &wsClient{conn: conn, ip: ip}
	h.mu.Lock()
	h.clients[conn] = client
	h.mu.Unlock()
	UpdateWSConnections(h.ClientCount())

	go func() {
		defer func() {
			h.disconnect(conn)
			UpdateWSConnections(h.ClientCount())
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			// Clients never send commands over this socket; it is
			// read-only by design (actions go through the HTTP endpoint).
		}
	}()
}

// handleBattleWS upgrades to a WebSocket that streams live events for one
// battle id, creating its hub lazily on first connection.
func (s *Server) handleBattleWS(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.manager.Get(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.hubFor(id).HandleWebSocket(w, r)
}

// hubFor returns the WebSocketHub for battle id, creating it on first use.
func (s *Server) hubFor(id string) *WebSocketHub {
	s.hubsMu.Lock()
	defer s.hubsMu.Unlock()
	if h, ok := s.hubs[id]; ok {
		return h
	}
	h := NewWebSocketHub()
	s.hubs[id] = h
	return h
}

// battleEventJSON is the wire representation of command.Event, named so
// json field names read naturally to an HTTP/WS client instead of exposing
// internal/command's flat struct verbatim.
type battleEventJSON struct {
	Kind       string  `json:"kind"`
	Side       int     `json:"side,omitempty"`
	Slot       int     `json:"slot,omitempty"`
	Species    string  `json:"species,omitempty"`
	Move       string  `json:"move,omitempty"`
	Amount     int     `json:"amount,omitempty"`
	Remaining  int     `json:"remaining,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Winner     int     `json:"winner,omitempty"`
}

