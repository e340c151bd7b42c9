package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_TextDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	var buf bytes.Buffer
	l := New("warn", "text", &buf)
	if l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn, got %s", l.GetLevel())
	}
	l.Info("hidden")
	l.WithField("enemy_id", "abc").Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatal("info line should be filtered at warn")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "enemy_id=abc") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New("info", "JSON", &buf)
	l.WithField("tick", 7).Info("match started")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "match started" || rec["tick"] != float64(7) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	l := New("loud", "text", &bytes.Buffer{})
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info fallback, got %s", l.GetLevel())
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	l := New("error", "text", &buf)
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("LOG_LEVEL should win, got %s", l.GetLevel())
	}
	l.Debug("x")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("LOG_FORMAT should select JSON, got %q", buf.String())
	}
}
