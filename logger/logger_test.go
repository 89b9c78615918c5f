package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "svc", &buf).
		WithComponent("parallel").
		WithFields(Fields(FieldEvaluationID, "abc"))

	l.Debug("workers joined", Fields(FieldWorkers, 4))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "workers joined" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry[FieldComponent] != "parallel" {
		t.Errorf("expected component=parallel, got %v", entry[FieldComponent])
	}
	if entry[FieldEvaluationID] != "abc" {
		t.Errorf("expected evaluation_id=abc, got %v", entry[FieldEvaluationID])
	}
	if entry[FieldWorkers] != float64(4) {
		t.Errorf("expected workers=4, got %v", entry[FieldWorkers])
	}
	if entry["service"] != "svc" {
		t.Errorf("expected service=svc, got %v", entry["service"])
	}
}

func TestLevelFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn"}, "", &buf)
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
	l.WithError(errors.New("boom")).Warn("visible")
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected error field in output, got %q", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	l.Error("nothing happens", Fields("k", "v"))
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(f) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(f), f)
	}
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields %v", f)
	}
}

func TestDurationFields(t *testing.T) {
	f := DurationFields("max", 1500*time.Millisecond)
	if f[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", f[FieldDuration])
	}
	if f[FieldOperation] != "max" {
		t.Errorf("expected operation=max, got %v", f[FieldOperation])
	}
}

func TestGlobalLogger(t *testing.T) {
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created global logger")
	}
	custom := NewNop()
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected SetGlobalLogger to replace the global logger")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "warn" || cfg.Format != "json" || cfg.Output != "stderr" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid format to fail validation")
	}
}
