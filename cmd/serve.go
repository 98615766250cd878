package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/deckforge/deckforge/internal/config"
	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/mcp"
	"github.com/deckforge/deckforge/internal/web"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 0 // websocket connections stay open indefinitely
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// runServe initializes and starts the HTTP server carrying the live
// preview, the websocket channel, and the streamable MCP endpoint.
func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr, err := parseServeAddr(cfg.Addr)
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting HTTP server", "version", Version)

	store := deck.NewStore(deck.StoreConfig{
		DefaultTheme: cfg.DefaultTheme,
		Logger:       logger,
	})
	hub := web.NewHub(store, logger)
	defer hub.Close()

	mcpServer, err := mcp.NewServer(mcp.Config{
		Name:      cfg.ServerName,
		Version:   Version,
		Logger:    logger,
		Store:     store,
		Publisher: hub,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	webServer, err := web.NewServer(web.ServerConfig{
		Logger:     logger,
		Store:      store,
		Hub:        hub,
		MCPHandler: mcpServer.HTTPHandler(),
	})
	if err != nil {
		return fmt.Errorf("creating preview server: %w", err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           webServer,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready",
		"addr", addr,
		"preview", "/",
		"mcp", "/mcp",
		"health", "/healthz",
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		hub.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}
