package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/deckforge/deckforge/internal/config"
)

func TestExecute_UnknownCommand(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"deckforge", "bogus"}

	err := Execute()
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown command")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the unknown command, got: %v", err)
	}
}

func TestExecute_NoArgsShowsHelp(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"deckforge"}

	output := captureStdout(t, func() {
		if err := Execute(); err != nil {
			t.Errorf("Execute() error: %v", err)
		}
	})
	if !strings.Contains(output, "Usage:") {
		t.Errorf("expected help output, got:\n%s", output)
	}
}

func TestExecute_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	for _, arg := range []string{"version", "--version", "-v"} {
		os.Args = []string{"deckforge", arg}
		output := captureStdout(t, func() {
			if err := Execute(); err != nil {
				t.Errorf("Execute() error for %q: %v", arg, err)
			}
		})
		if !strings.Contains(output, "deckforge") {
			t.Errorf("version output for %q missing binary name", arg)
		}
	}
}

func TestBuildLogger(t *testing.T) {
	logger, err := buildLogger(&config.Config{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("buildLogger() error: %v", err)
	}
	if logger == nil {
		t.Fatal("buildLogger() returned nil logger")
	}

	if _, err := buildLogger(&config.Config{LogLevel: "nope"}); err == nil {
		t.Error("buildLogger() = nil error for invalid level")
	}
}
