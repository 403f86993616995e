package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frameshuffle/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.Source != filepath.Join(tempHome, "Pictures", "theframe") {
		t.Fatalf("unexpected source: %q", cfg.Paths.Source)
	}
	if cfg.Paths.Destination != filepath.Join(tempHome, "Pictures", "display") {
		t.Fatalf("unexpected destination: %q", cfg.Paths.Destination)
	}
	if cfg.Limits.MaxFiles != 1200 {
		t.Fatalf("unexpected max_files default: %d", cfg.Limits.MaxFiles)
	}
	if cfg.Limits.MaxBytes != 4*1024*1024*1024 {
		t.Fatalf("unexpected max_bytes default: %d", cfg.Limits.MaxBytes)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
source = "` + filepath.Join(dir, "in") + `"
destination = "` + filepath.Join(dir, "out") + `"

[limits]
max_files = 10
max_bytes = 100

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.Limits.MaxFiles != 10 || cfg.Limits.MaxBytes != 100 {
		t.Fatalf("limits not read: %+v", cfg.Limits)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestValidateRejectsZeroLimits(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero max_files", func(c *config.Config) { c.Limits.MaxFiles = 0 }, "max_files"},
		{"negative max_bytes", func(c *config.Config) { c.Limits.MaxBytes = -1 }, "max_bytes"},
		{"same source and destination", func(c *config.Config) {
			c.Paths.Destination = c.Paths.Source
		}, "must differ"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "yaml" }, "logging.format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.Source = "/tmp/in"
			cfg.Paths.Destination = "/tmp/out"
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	if cfg.Limits.MaxFiles != 1200 {
		t.Fatalf("sample max_files: %d", cfg.Limits.MaxFiles)
	}
}
