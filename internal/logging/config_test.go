package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok || got != want {
			t.Fatalf("%q: got=%v ok=%v want=%v", raw, got, ok, want)
		}
	}
	if _, ok := parseLevel("loud"); ok {
		t.Fatalf("expected unknown level rejected")
	}
	if _, ok := parseLevel(""); ok {
		t.Fatalf("expected empty level ignored")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogBypass, "nope")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected no color")
	}
	if cfg.Bypass {
		t.Fatalf("expected bypass untouched by invalid value")
	}
}

func TestNewWritesAppField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{App: "dtserver", Level: zerolog.InfoLevel, NoColor: true, Out: &buf})
	logger.Info().Str("language", "German").Msg("bound")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, "app=dtserver") || !strings.Contains(out, "language=German") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
}

func TestNewBypass(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Bypass: true, Out: &buf})
	logger.Error().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
