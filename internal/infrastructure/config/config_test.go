package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"outgo/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StorageBackend != config.BackendFile {
		t.Fatalf("expected default backend %q, got %q", config.BackendFile, cfg.StorageBackend)
	}
	if cfg.DataDir != "" {
		t.Fatalf("expected data dir default to be empty, got %q", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("DATA_DIR", "/tmp/outgo-test")
	t.Setenv("REDIS_URL", "redis://example:6380")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StorageBackend != "sqlite" {
		t.Fatalf("expected backend override, got %s", cfg.StorageBackend)
	}
	if cfg.DataDir != "/tmp/outgo-test" {
		t.Fatalf("expected data dir override, got %s", cfg.DataDir)
	}
	if cfg.RedisURL != "redis://example:6380" {
		t.Fatalf("expected redis URL override, got %s", cfg.RedisURL)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected log format override, got %s", cfg.LogFormat)
	}
}

func TestResolveDataDir(t *testing.T) {
	cfg := &config.Config{DataDir: "/custom/dir"}
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dir != "/custom/dir" {
		t.Fatalf("expected configured dir, got %s", dir)
	}

	cfg = &config.Config{}
	dir, err = cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if !strings.HasSuffix(dir, ".outgo") {
		t.Fatalf("expected home-relative .outgo dir, got %s", dir)
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := &config.Config{DataDir: "/custom/dir"}
	path, err := cfg.SQLitePath()
	if err != nil {
		t.Fatalf("sqlite path: %v", err)
	}
	if path != filepath.Join("/custom/dir", "outgo.db") {
		t.Fatalf("unexpected sqlite path %s", path)
	}
}
