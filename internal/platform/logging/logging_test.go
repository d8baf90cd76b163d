package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewDefaultsToInfoText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug written at info level: %q", buf.String())
	}
	logger.Info("elements loaded", "count", 3)
	if !strings.Contains(buf.String(), "elements loaded") || !strings.Contains(buf.String(), "count=3") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{name: "debug at debug", level: "debug", logFunc: func(l *log.Logger) { l.Debug("x") }, wantLog: true},
		{name: "debug at upper case info", level: "INFO", logFunc: func(l *log.Logger) { l.Debug("x") }, wantLog: false},
		{name: "warn at warn", level: "warn", logFunc: func(l *log.Logger) { l.Warn("x") }, wantLog: true},
		{name: "info at error", level: "error", logFunc: func(l *log.Logger) { l.Info("x") }, wantLog: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, Options{Level: tt.level})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			tt.logFunc(logger)
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Fatalf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: FormatJSON, Prefix: "web"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Warn("fetch failed", "collection", "mindmapelements")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "fetch failed" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["collection"] != "mindmapelements" {
		t.Fatalf("collection = %v", entry["collection"])
	}
}

func TestNewRejectsUnknownOptions(t *testing.T) {
	if _, err := New(nil, Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(nil, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("FromContext did not return the attached logger")
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext without logger returned nil")
	}
	if WithLogger(ctx, nil) != ctx {
		t.Fatal("WithLogger(nil) should return ctx unchanged")
	}
}
