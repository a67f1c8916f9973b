// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Str("query", "toy story").Msg("query answered")

	out := buf.String()
	if !strings.Contains(out, "query answered") {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, `"query":"toy story"`) {
		t.Errorf("expected query field in output, got: %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("expected level in output, got: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"disabled", zerolog.Disabled},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCtx_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-1"`, `"correlation_id":"corr-1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestContextIDs_Absent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}
}

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if got := len(GenerateCorrelationID()); got != 8 {
		t.Errorf("correlation ID length = %d, want 8", got)
	}
	if got := len(GenerateRequestID()); got != 36 {
		t.Errorf("request ID length = %d, want 36", got)
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("expected distinct request IDs")
	}
}

func TestSlogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))
	logger.WithGroup("svc").Warn("restarting", slog.String("name", "http"), slog.Int("attempt", 2))

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"svc.name":"http"`, `"svc.attempt":2`, "restarting"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
