package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	log.WithComponent("picker").Info("picked")
	log.Debug("hidden")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "picked" {
		t.Errorf("Expected message 'picked', got %v", entry["message"])
	}
	if entry["component"] != "picker" {
		t.Errorf("Expected component 'picker', got %v", entry["component"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("Expected a timestamp field")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"":      logrus.InfoLevel,
		"loud":  logrus.InfoLevel,
	}
	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", input, got, want)
		}
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "datepick.log")

	log, err := NewFile(path, "debug")
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	log.Debug("first")
	if err := log.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"first"`) {
		t.Errorf("Expected log to contain the entry, got %q", data)
	}

	if err := Discard().Close(); err != nil {
		t.Errorf("Expected Close on a discard logger to succeed, got %v", err)
	}
}
