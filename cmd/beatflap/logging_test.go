package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "beatflap.log")

	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("tempo changed", "bpm", 150)
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "tempo changed") || !strings.Contains(string(data), "bpm=150") {
		t.Errorf("unexpected log contents %q", data)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beatflap.log")

	logger, closeLog, err := newLogger(path, "warn")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("round started")
	closeLog()

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("info should be filtered at warn level, got %q", data)
	}
}

func TestNewLoggerErrors(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}

	logger, closeLog, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger() without file failed: %v", err)
	}
	logger.Info("discarded")
	if err := closeLog(); err != nil {
		t.Errorf("closing a discard logger should not fail: %v", err)
	}
}
