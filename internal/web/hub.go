package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/log"
	"github.com/deckforge/deckforge/internal/widget"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4 * 1024
	sendBuffer     = 8
)

// clientMessage is what the widget script sends over the socket:
// navigation ("next", "prev", "goto") and theme selection ("theme").
type clientMessage struct {
	Action string `json:"action"`
	Index  int    `json:"index,omitempty"`
	Theme  string `json:"theme,omitempty"`
}

// deckMessage is the authoritative push sent to every viewer after a
// successful mutation.
type deckMessage struct {
	Type string    `json:"type"`
	Deck deck.Deck `json:"deck"`
}

// Hub fans deck snapshots out to connected preview viewers and feeds
// their navigation and theme messages into per-connection presentation
// state. It implements the MCP server's Publisher interface.
type Hub struct {
	store    *deck.Store
	logger   log.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*conn]struct{}
}

type conn struct {
	ws   *websocket.Conn
	send chan []byte
	pres *widget.Presentation
}

// NewHub creates a hub bound to the deck store. Theme selections from
// viewers are persisted through the store's ChangeTheme operation.
func NewHub(store *deck.Store, logger log.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The preview is a local development surface.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*conn]struct{}),
	}
}

// Publish broadcasts a deck snapshot to all connected viewers and
// updates their presentation state (reconciliation: index resets to 0).
func (h *Hub) Publish(d deck.Deck) {
	payload, err := json.Marshal(deckMessage{Type: "deck", Deck: d})
	if err != nil {
		h.logger.Warn("marshaling deck push", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		c.pres.Apply(d)
		select {
		case c.send <- payload:
		default:
			// Viewer is too slow; drop it rather than block mutations.
			h.dropLocked(c)
		}
	}
}

// Clients reports the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// ServeWS upgrades the request to a websocket and runs the connection's
// read and write loops.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &conn{
		ws:   ws,
		send: make(chan []byte, sendBuffer),
		pres: widget.NewPresentation(h.persistTheme, h.logger),
	}

	// Seed the viewer with the current deck, when one exists.
	if d, ok := h.store.Current(); ok {
		c.pres.Apply(d)
		if payload, err := json.Marshal(deckMessage{Type: "deck", Deck: d}); err == nil {
			c.send <- payload
		}
	}

	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("preview viewer connected", "remote", ws.RemoteAddr())

	go h.writeLoop(c)
	h.readLoop(c)
}

// persistTheme is the presentation's ThemeSetter: it routes a viewer's
// theme choice through the same store operation the change_theme tool
// uses, then broadcasts the result.
func (h *Hub) persistTheme(_ context.Context, theme string) error {
	d, _, err := h.store.ChangeTheme(theme)
	if err != nil {
		return err
	}
	h.Publish(d)
	return nil
}

func (h *Hub) readLoop(c *conn) {
	defer h.drop(c)
	c.ws.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debug("ignoring malformed viewer message", "error", err)
			continue
		}

		switch msg.Action {
		case "next":
			c.pres.Next()
		case "prev":
			c.pres.Prev()
		case "goto":
			c.pres.GoTo(msg.Index)
		case "theme":
			c.pres.SelectTheme(context.Background(), msg.Theme)
		default:
			h.logger.Debug("ignoring unknown viewer action", "action", msg.Action)
		}
	}
}

func (h *Hub) writeLoop(c *conn) {
	for payload := range c.send {
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.drop(c)
			return
		}
	}
	_ = c.ws.Close()
}

func (h *Hub) drop(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

// dropLocked removes a connection. Callers must hold h.mu.
func (h *Hub) dropLocked(c *conn) {
	if _, ok := h.conns[c]; !ok {
		return
	}
	delete(h.conns, c)
	close(c.send)
	_ = c.ws.Close()
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		h.dropLocked(c)
	}
}
