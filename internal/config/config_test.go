package config

import (
	"errors"
	"flag"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/coinflip/internal/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("coinflip", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Trials != DefaultTrials {
		t.Errorf("Trials = %d, want %d", cfg.Trials, DefaultTrials)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want NumCPU (%d)", cfg.Workers, runtime.NumCPU())
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if !strings.HasSuffix(cfg.OutputFile, DefaultOutputName) {
		t.Errorf("OutputFile = %q, want a path ending in %q", cfg.OutputFile, DefaultOutputName)
	}
	if cfg.Quiet || cfg.Verbose || cfg.TUI || cfg.NoColor {
		t.Error("boolean modes should default to false")
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{
		"-o", "/tmp/out.csv",
		"-trials", "5000",
		"-workers", "3",
		"-seed", "42",
		"-timeout", "30s",
		"-quiet",
		"-metrics-listen", "localhost:9100",
	}
	cfg, err := ParseConfig("coinflip", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.OutputFile != "/tmp/out.csv" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
	if cfg.Trials != 5000 || cfg.Workers != 3 || cfg.Seed != 42 {
		t.Errorf("unexpected numeric config: %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
	if cfg.MetricsListen != "localhost:9100" {
		t.Errorf("MetricsListen = %q", cfg.MetricsListen)
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := ParseConfig("coinflip", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfigRejectsPositionalArgs(t *testing.T) {
	_, err := ParseConfig("coinflip", []string{"extra"}, io.Discard)
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("expected ConfigError for positional argument, got %v", err)
	}
}

func TestParseConfigMalformedFlagValue(t *testing.T) {
	_, err := ParseConfig("coinflip", []string{"-trials", "abc"}, io.Discard)
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("expected ConfigError for malformed flag value, got %v", err)
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"negative trials", []string{"-trials", "-1"}, "trials"},
		{"zero workers", []string{"-workers", "0"}, "workers"},
		{"negative workers", []string{"-workers", "-2"}, "workers"},
		{"empty output", []string{"-o", ""}, "output"},
		{"zero timeout", []string{"-timeout", "0s"}, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("coinflip", tt.args, io.Discard)
			var valErr apperrors.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Field != tt.field {
				t.Errorf("failed field = %q, want %q", valErr.Field, tt.field)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COINFLIP_TRIALS", "777")
	t.Setenv("COINFLIP_WORKERS", "2")
	t.Setenv("COINFLIP_OUTPUT", "/tmp/env.csv")
	t.Setenv("COINFLIP_SEED", "9")
	t.Setenv("COINFLIP_TIMEOUT", "90s")

	cfg, err := ParseConfig("coinflip", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Trials != 777 || cfg.Workers != 2 || cfg.Seed != 9 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.OutputFile != "/tmp/env.csv" {
		t.Errorf("OutputFile = %q, want /tmp/env.csv", cfg.OutputFile)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
}

func TestEnvOverridesYieldToExplicitFlags(t *testing.T) {
	t.Setenv("COINFLIP_TRIALS", "777")

	cfg, err := ParseConfig("coinflip", []string{"-trials", "123"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Trials != 123 {
		t.Errorf("explicit flag should win over env, got %d", cfg.Trials)
	}
}

func TestEnvOverridesIgnoreInvalidValues(t *testing.T) {
	t.Setenv("COINFLIP_TRIALS", "not-a-number")

	cfg, err := ParseConfig("coinflip", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.Trials != DefaultTrials {
		t.Errorf("invalid env value should be ignored, got %d", cfg.Trials)
	}
}
