package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/deck"
)

func validConfig() *Config {
	return &Config{
		Addr:         DefaultAddr,
		LogLevel:     DefaultLogLevel,
		DefaultTheme: deck.DefaultTheme,
		ServerName:   DefaultServerName,
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, deck.DefaultTheme, cfg.DefaultTheme)
	assert.Equal(t, DefaultServerName, cfg.ServerName)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DECKFORGE_ADDR", "0.0.0.0:8080")
	t.Setenv("DECKFORGE_DEFAULT_THEME", "forest")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, "forest", cfg.DefaultTheme)
}

func TestLoad_EnvOverrideInvalidTheme(t *testing.T) {
	t.Setenv("DECKFORGE_DEFAULT_THEME", "vaporwave")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefaultTheme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"bad addr", func(c *Config) { c.Addr = "nonsense" }, ErrInvalidAddr},
		{"missing port", func(c *Config) { c.Addr = "127.0.0.1" }, ErrInvalidAddr},
		{"port out of range", func(c *Config) { c.Addr = "127.0.0.1:70000" }, ErrInvalidAddr},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, ErrInvalidLogLevel},
		{"bad theme", func(c *Config) { c.DefaultTheme = "neon" }, ErrInvalidDefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("chatty")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
