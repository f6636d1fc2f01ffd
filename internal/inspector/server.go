// Package inspector serves live wiring feedback to authoring clients over
// WebSocket: connected clients receive the current resolution snapshot
// whenever it changes, and a query endpoint answers per-action resolution
// lookups as an author edits bindings.
//
// The inspector sits outside the core: it observes resolution output, never
// drives it.
package inspector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/pagecraft/pagewire/internal/ctxlog"
	"github.com/pagecraft/pagewire/internal/resolve"
)

// QueryFunc answers a single-action resolution lookup for a page.
type QueryFunc func(pageID, actionID string) (resolve.Resolution, bool)

// Server pushes resolution snapshots to connected authoring clients.
type Server struct {
	httpServer *http.Server
	upgrader   websocket.Upgrader
	query      QueryFunc

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}

	snapshotMu sync.RWMutex
	snapshot   []byte
}

// New creates an inspector server listening on port.
func New(port int, query QueryFunc) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Authoring clients connect from local dev tooling.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		query:   query,
		clients: make(map[*websocket.Conn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/resolution", s.handleResolution)
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	return s
}

// Start runs the server in a goroutine; it does not block.
func (s *Server) Start(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	go func() {
		logger.Info("Inspector server starting", "address", fmt.Sprintf("ws://localhost%s/ws", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Inspector server failed unexpectedly", "error", err)
		}
	}()
}

// Shutdown closes the server and every connected client.
func (s *Server) Shutdown(ctx context.Context) error {
	s.clientsMu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
	s.clientsMu.Unlock()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler exposes the server's mux, for tests that run it on an ephemeral
// listener instead of a fixed port.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ClientCount returns the number of currently subscribed clients.
func (s *Server) ClientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

// Publish replaces the current snapshot and broadcasts it to every
// connected client. Clients that fail the write are dropped.
func (s *Server) Publish(ctx context.Context, snapshot any) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode inspector snapshot: %w", err)
	}

	s.snapshotMu.Lock()
	s.snapshot = payload
	s.snapshotMu.Unlock()

	logger := ctxlog.FromContext(ctx)
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Debug("Dropping inspector client after failed write.", "error", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
	return nil
}

// handleWS upgrades the connection, sends the current snapshot, and keeps
// the client subscribed until it disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.snapshotMu.RLock()
	snapshot := s.snapshot
	s.snapshotMu.RUnlock()
	if snapshot != nil {
		if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			conn.Close()
			return
		}
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()

	// Reader loop: we expect no client messages, but reading is what
	// detects disconnects.
	go func() {
		defer func() {
			s.clientsMu.Lock()
			delete(s.clients, conn)
			s.clientsMu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// handleResolution answers a per-action lookup:
// GET /resolution?page=home&action=modal.open
func (s *Server) handleResolution(w http.ResponseWriter, r *http.Request) {
	pageID := r.URL.Query().Get("page")
	actionID := r.URL.Query().Get("action")
	if pageID == "" || actionID == "" {
		http.Error(w, "page and action query parameters are required", http.StatusBadRequest)
		return
	}

	res, ok := s.query(pageID, actionID)
	if !ok {
		http.Error(w, "unknown page", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
