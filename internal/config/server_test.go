package config

import (
	"testing"
	"time"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if !cfg.MCPEnabled {
		t.Fatal("MCPEnabled should default to true")
	}
	if cfg.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("ReadHeaderTimeout = %v, want 5s", cfg.ReadHeaderTimeout)
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MCP_ENABLED", "false")
	t.Setenv("ADMIN_API_KEY", "secret")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.MCPEnabled || cfg.AdminAPIKey != "secret" {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
}

func TestLoadServerRejectsBadBool(t *testing.T) {
	t.Setenv("MCP_ENABLED", "maybe")

	if _, err := LoadServer(); err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}
