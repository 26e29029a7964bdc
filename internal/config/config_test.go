package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cutline/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("reported a file that does not exist")
	}
	if cfg.History.MaxDepth != 50 || cfg.History.DebounceMS != 500 {
		t.Fatalf("history defaults wrong: %+v", cfg.History)
	}
	if cfg.Output.Width != 1920 || cfg.Output.Format != "mp4" {
		t.Fatalf("output defaults wrong: %+v", cfg.Output)
	}
	if !filepath.IsAbs(cfg.Paths.LibraryDir) {
		t.Fatalf("library dir not normalized: %q", cfg.Paths.LibraryDir)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[history]
max_depth = 10
debounce_ms = 250

[logging]
format = "JSON"
`)
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.History.MaxDepth != 10 || cfg.History.DebounceMS != 250 {
		t.Fatalf("history overrides not applied: %+v", cfg.History)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging format not normalized: %q", cfg.Logging.Format)
	}
	// Untouched sections keep their defaults.
	if cfg.Output.Height != 1080 {
		t.Fatalf("output default lost: %+v", cfg.Output)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"zero history depth", "[history]\nmax_depth = -1\n", "history.max_depth"},
		{"bad output format", "[output]\nformat = \"avi\"\n", "output.format"},
		{"bad log format", "[logging]\nformat = \"yaml\"\n", "logging.format"},
		{"zero fps", "[output]\nfps = 0.0\n", "output.fps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LibraryDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %s missing: %v", dir, err)
		}
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := writeConfig(t, config.SampleConfig())
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	// The sample documents the defaults; drift between the two is a bug.
	// Paths are excluded because loading normalizes them to absolute form.
	defaults := config.Default()
	if cfg.History != defaults.History || cfg.Output != defaults.Output || cfg.Logging != defaults.Logging {
		t.Fatalf("sample config diverges from defaults:\n%+v\n%+v", *cfg, defaults)
	}
}
