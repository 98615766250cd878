// Package config provides application configuration with multi-source
// priority:
//
//  1. Environment variables (DECKFORGE_*, runtime override)
//  2. Config file (~/.deckforge/config.yaml)
//  3. Default values
//
// Validation is fail-fast with sentinel errors for errors.Is() checks.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/deckforge/deckforge/internal/deck"
)

var (
	// ErrInvalidAddr indicates the listen address is not host:port.
	ErrInvalidAddr = errors.New("invalid listen address")

	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidDefaultTheme indicates the default theme is not a member
	// of the theme set.
	ErrInvalidDefaultTheme = errors.New("invalid default theme")
)

// Default configuration values.
const (
	DefaultAddr       = "127.0.0.1:3000"
	DefaultLogLevel   = "info"
	DefaultServerName = "pitch-deck-builder"
)

// Config stores application configuration.
type Config struct {
	// Addr is the serve command's listen address (host:port).
	Addr string `mapstructure:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogJSON switches log output to JSON format.
	LogJSON bool `mapstructure:"log_json"`

	// DefaultTheme is the theme assigned to newly generated decks.
	DefaultTheme string `mapstructure:"default_theme"`

	// ServerName is the MCP server implementation name.
	ServerName string `mapstructure:"server_name"`
}

// Load reads configuration from defaults, an optional config file, and
// environment overrides, then validates the result.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".deckforge"))
	}
	v.AddConfigPath(".")

	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_json", false)
	v.SetDefault("default_theme", deck.DefaultTheme)
	v.SetDefault("server_name", DefaultServerName)

	v.SetEnvPrefix("DECKFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	if err := validateAddr(c.Addr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddr, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !deck.ValidTheme(c.DefaultTheme) {
		return fmt.Errorf("%w: %q (choose one of: %s)",
			ErrInvalidDefaultTheme, c.DefaultTheme, strings.Join(deck.Themes, ", "))
	}
	if c.ServerName == "" {
		return errors.New("server_name must not be empty")
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

func validateAddr(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("must be in host:port format: %w", err)
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		if strings.ContainsAny(host, " \t\n") {
			return fmt.Errorf("invalid host: %q", host)
		}
	}
	if port == "" {
		return errors.New("port is required")
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port must be numeric: %w", err)
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be 0-65535 (0 = auto-assign), got %d", n)
	}
	return nil
}
