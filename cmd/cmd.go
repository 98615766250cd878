// Package cmd provides CLI commands for deckforge.
//
// Commands:
//   - mcp: Model Context Protocol server on stdio (for MCP clients)
//   - serve: HTTP server with live preview and streamable MCP endpoint
//
// Signal handling and graceful shutdown are implemented for both
// long-running commands via context cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/deckforge/deckforge/internal/config"
	"github.com/deckforge/deckforge/internal/log"
)

// Execute is the main entry point for the deckforge CLI.
func Execute() error {
	// Initialize logger once at entry point. Logs go to stderr so the
	// mcp command can reserve stdout for the protocol stream.
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "mcp":
		return runMCP()
	case "serve":
		return runServe()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// buildLogger creates the command's logger from the loaded config.
// DEBUG in the environment overrides the configured level.
func buildLogger(cfg *config.Config) (log.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	return log.New(log.Config{Level: level, JSON: cfg.LogJSON}), nil
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("deckforge - Pitch deck builder MCP server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  deckforge mcp             Start MCP server on stdio (for MCP clients)")
	fmt.Println("  deckforge serve [addr]    Start HTTP server (default: 127.0.0.1:3000)")
	fmt.Println("  deckforge --version       Show version information")
	fmt.Println("  deckforge --help          Show this help")
	fmt.Println()
	fmt.Println("The serve command exposes:")
	fmt.Println("  /                  Live slideshow preview of the current deck")
	fmt.Println("  /api/deck          Current deck snapshot as JSON")
	fmt.Println("  /mcp               Streamable HTTP MCP endpoint")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DECKFORGE_ADDR            Listen address for serve")
	fmt.Println("  DECKFORGE_LOG_LEVEL       debug, info, warn, error")
	fmt.Println("  DECKFORGE_DEFAULT_THEME   Theme for newly generated decks")
	fmt.Println("  DEBUG                     Enable debug logging")
}
