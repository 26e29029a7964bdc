// Package testsupport provides shared helpers for package tests: temp-dir
// backed configs and pre-opened project stores.
package testsupport

import (
	"path/filepath"
	"testing"

	"cutline/internal/config"
	"cutline/internal/projectstore"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	return &cfg
}

// MustOpenStore opens a project store for the config and closes it when the
// test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *projectstore.Store {
	t.Helper()

	store, err := projectstore.Open(cfg)
	if err != nil {
		t.Fatalf("open project store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close project store: %v", err)
		}
	})
	return store
}
