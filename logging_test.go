package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	if _, err := setupLogging("loud", "", false); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "snake.log")
	closeLog, err := setupLogging("warn", path, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "kept") {
		t.Errorf("Expected warn line in %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Errorf("Info line leaked past warn level: %q", out)
	}
}
