package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		value string
		env   string
		want  slog.Level
	}{
		{"", "development", slog.LevelDebug},
		{"", "production", slog.LevelInfo},
		{"info", "development", slog.LevelInfo},
		{"WARNING", "", slog.LevelWarn},
		{"fatal", "", LevelCritical},
		{"nonsense", "production", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.value, tc.env); got != tc.want {
			t.Fatalf("parseLevel(%q, %q): expected %v, got %v", tc.value, tc.env, tc.want, got)
		}
	}
}

func TestCriticalLevelName(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")
	log.Critical("app: boom")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if entry["level"] != "CRITICAL" {
		t.Fatalf("expected CRITICAL level, got %v", entry["level"])
	}
}

func TestBusinessErrorSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "text")
	log.BusinessError("recipes.update: not found", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged for nil error, got %q", buf.String())
	}

	log.With("recipe_id", 7).BusinessError("recipes.update: not found", errors.New("recipe not found"))
	if !bytes.Contains(buf.Bytes(), []byte("recipe_id=7")) {
		t.Fatalf("expected attrs in log line, got %q", buf.String())
	}
}
