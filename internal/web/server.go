// Package web provides the live preview HTTP server: it serves the
// slideshow widget for the current deck, exposes the deck snapshot as
// JSON, and runs the websocket channel that keeps open viewers
// reconciled with the authoritative deck.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/log"
	"github.com/deckforge/deckforge/internal/widget"
)

// wsPath is where the widget's live script connects.
const wsPath = "/ws"

// Server is the preview HTTP server.
type Server struct {
	router   *mux.Router
	store    *deck.Store
	hub      *Hub
	renderer *widget.Renderer
	logger   log.Logger
}

// ServerConfig contains configuration for creating a preview server.
type ServerConfig struct {
	Logger log.Logger  // nil falls back to slog.Default()
	Store  *deck.Store // required
	Hub    *Hub        // required
	// MCPHandler, when set, is mounted at /mcp so one listener carries
	// both the tool endpoint and the preview.
	MCPHandler http.Handler
}

// NewServer creates a preview server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := widget.NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:   mux.NewRouter(),
		store:    cfg.Store,
		hub:      cfg.Hub,
		renderer: renderer,
		logger:   logger,
	}

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/deck", s.handleDeck).Methods(http.MethodGet)
	s.router.HandleFunc(wsPath, s.hub.ServeWS)
	if cfg.MCPHandler != nil {
		s.router.PathPrefix("/mcp").Handler(cfg.MCPHandler)
	}

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleIndex serves the live widget for the current deck, or a
// placeholder page while no deck has been generated yet.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	d, ok := s.store.Current()
	if !ok {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(placeholderHTML))
		return
	}

	html, err := s.renderer.RenderLive(d, wsPath)
	if err != nil {
		s.logger.Error("rendering live widget", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(html))
}

// handleDeck returns the current deck snapshot as JSON.
func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	d, ok := s.store.Current()
	if !ok {
		http.Error(w, `{"error":"no deck found, generate a pitch deck first"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		s.logger.Error("encoding deck snapshot", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// placeholderHTML greets viewers before the first deck exists. It
// reloads periodically; once a deck is generated the widget page takes
// over (with its websocket keeping it current from then on).
const placeholderHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta http-equiv="refresh" content="3">
<title>deckforge</title>
<style>
  body { font-family: sans-serif; background: #0f172a; color: #fff;
         display: flex; align-items: center; justify-content: center;
         height: 100vh; margin: 0; }
  .hint { text-align: center; opacity: 0.7; }
</style>
</head>
<body>
<div class="hint">
  <h1>No deck yet</h1>
  <p>Call the generate_pitch_deck tool to create one.</p>
</div>
</body>
</html>
`
