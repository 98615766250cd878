// Package mcp exposes the deck operations as Model Context Protocol
// tools using the official Go SDK. Every successful tool call returns a
// text rendering of the deck, the structured deck snapshot, and an
// embedded UI resource carrying the interactive slideshow widget.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/log"
	"github.com/deckforge/deckforge/internal/widget"
)

// Publisher receives the deck snapshot after every successful mutation.
// The live preview hub implements it to push reconciliation updates to
// connected viewers.
type Publisher interface {
	Publish(d deck.Deck)
}

// Server wraps the MCP SDK server and the deck store.
type Server struct {
	mcpServer *mcp.Server
	store     *deck.Store
	renderer  *widget.Renderer
	publisher Publisher
	logger    log.Logger
	name      string
	version   string
}

// Config holds MCP server configuration.
type Config struct {
	Name      string
	Version   string
	Logger    log.Logger  // nil falls back to slog.Default()
	Store     *deck.Store // required
	Publisher Publisher   // optional, nil disables live preview pushes
}

// NewServer creates an MCP server with all deck tools registered.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("deck store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := widget.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating widget renderer: %w", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		store:     cfg.Store,
		renderer:  renderer,
		publisher: cfg.Publisher,
		logger:    logger,
		name:      cfg.Name,
		version:   cfg.Version,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server on the given transport. Blocks until the
// transport closes or ctx is canceled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// HTTPHandler returns a streamable HTTP handler for mounting the MCP
// endpoint on an existing listener.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// result builds the success response shared by every tool: the rendered
// text summary, the widget HTML as an embedded UI resource, and the deck
// snapshot as structured content.
func (s *Server) result(d deck.Deck, summary string) (*mcp.CallToolResult, any, error) {
	html, err := s.renderer.Render(d)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering widget: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(d)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: summary},
			&mcp.EmbeddedResource{
				Resource: &mcp.ResourceContents{
					URI:      "ui://pitch-deck/" + d.ID,
					MIMEType: "text/html",
					Text:     html,
				},
			},
		},
	}, d, nil
}

// errResult surfaces a domain error to the caller verbatim.
func errResult(err error) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}, nil, nil
}
