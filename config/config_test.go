package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ListenPort != 8053 {
		t.Errorf("ListenPort = %d, want 8053", cfg.ListenPort)
	}
	if cfg.UpstreamResolver != "8.8.8.8:53" {
		t.Errorf("UpstreamResolver = %s, want 8.8.8.8:53", cfg.UpstreamResolver)
	}
	if cfg.CacheBackend != "ttl" {
		t.Errorf("CacheBackend = %s, want ttl", cfg.CacheBackend)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults for a missing file, got %+v", cfg)
	}
}

func TestLoadOverlaysProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinedns.json")
	contents := `{"listen_port": 5300, "upstream_resolver": "1.1.1.1:53"}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ListenPort != 5300 {
		t.Errorf("ListenPort = %d, want 5300", cfg.ListenPort)
	}
	if cfg.UpstreamResolver != "1.1.1.1:53" {
		t.Errorf("UpstreamResolver = %s, want 1.1.1.1:53", cfg.UpstreamResolver)
	}
	if cfg.CacheBackend != "ttl" {
		t.Errorf("CacheBackend = %s, want ttl (default preserved)", cfg.CacheBackend)
	}
}

func TestLoadInvalidJSONReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinedns.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}
