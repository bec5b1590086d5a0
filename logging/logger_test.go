package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestProductionLoggerWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithOutput("production", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("hex", "#afecfa").Msg("generated")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "generated" || entry["hex"] != "#afecfa" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatal("entry has no timestamp")
	}
}

func TestDevelopmentLoggerIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithOutput("development", &buf)

	if logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.GetLevel())
	}
	logger.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug message missing from %q", buf.String())
	}
}
