package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("expected JSON output by default")
	}
	if cfg.Output == nil {
		t.Error("expected a default output")
	}
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelWarn, Output: buf})

	logger.Info().Msg("hidden message")
	logger.Warn().Msg("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestSetup_Pretty(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelDebug, Pretty: true, Output: buf})

	logger.Debug().Str("template", "form.tmpl").Msg("loaded")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("expected console output, got JSON: %q", out)
	}
	if !strings.Contains(out, "loaded") || !strings.Contains(out, "template=form.tmpl") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Component(Setup(Config{Output: buf}), "bootstrap")

	logger.Info().Msg("ready")

	if !strings.Contains(buf.String(), `"component":"bootstrap"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{input: "", expected: LevelInfo},
		{input: "DEBUG", expected: LevelDebug},
		{input: "warning", expected: LevelWarn},
		{input: " error ", expected: LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParseLevel(%q) = %q, %v; want %q", tt.input, got, err, tt.expected)
		}
	}

	if parseLevel("bogus") != zerolog.InfoLevel {
		t.Errorf("unknown levels should fall back to info")
	}
}
