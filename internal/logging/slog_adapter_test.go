// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		zerologLevel zerolog.Level
		slogLevel    slog.Level
		want         bool
	}{
		{"debug logger enables debug", zerolog.DebugLevel, slog.LevelDebug, true},
		{"info logger disables debug", zerolog.InfoLevel, slog.LevelDebug, false},
		{"info logger enables warn", zerolog.InfoLevel, slog.LevelWarn, true},
		{"error logger disables info", zerolog.ErrorLevel, slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(tt.zerologLevel))
			if got := h.Enabled(t.Context(), tt.slogLevel); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.slogLevel, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	slogger.Warn("service restarted",
		slog.String("service", "http-server"),
		slog.Int("attempt", 2),
		slog.Bool("backoff", true),
		slog.Duration("wait", 15*time.Second),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"service":"http-server"`,
		`"attempt":2`,
		`"backoff":true`,
		"service restarted",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewSlogHandlerWithLogger(zerolog.New(&buf))
	slogger := slog.New(base.WithAttrs([]slog.Attr{slog.String("supervisor", "root")}).WithGroup("event"))

	slogger.Info("failure", slog.String("kind", "panic"))

	output := buf.String()
	if !strings.Contains(output, `"event.supervisor":"root"`) {
		t.Errorf("expected grouped attr from WithAttrs, got: %s", output)
	}
	if !strings.Contains(output, `"event.kind":"panic"`) {
		t.Errorf("expected grouped record attr, got: %s", output)
	}
}

func TestSlogHandler_WithGroupEmptyName(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(nil))
	if got := h.WithGroup(""); got != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	if NewSlogLogger() == nil {
		t.Fatal("NewSlogLogger() = nil")
	}
}
