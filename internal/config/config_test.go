package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, expected 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("default driver = %q, expected sqlite", cfg.Database.Driver)
	}
	if cfg.Snapshot.Key != "workspace" {
		t.Errorf("default snapshot key = %q, expected workspace", cfg.Snapshot.Key)
	}
	if !cfg.Snapshot.SeedDemo {
		t.Error("demo seeding should default to enabled")
	}
	if cfg.Redis.Enabled {
		t.Error("redis should be disabled by default")
	}
	if cfg.Server.RateLimitRPS != 10 || cfg.Server.RateLimitBurst != 20 {
		t.Errorf("default rate limit = %v rps / %d burst, expected 10/20",
			cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() with missing file should fall back to defaults, got error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, expected default 8080", cfg.Server.Port)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  rate_limit_rps: 5
  rate_limit_burst: 8
database:
  driver: sqlite
  dsn: test.db
snapshot:
  key: test-workspace
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, expected 9090", cfg.Server.Port)
	}
	if cfg.Snapshot.Key != "test-workspace" {
		t.Errorf("snapshot key = %q, expected test-workspace", cfg.Snapshot.Key)
	}
	if cfg.Server.RateLimitRPS != 5 || cfg.Server.RateLimitBurst != 8 {
		t.Errorf("rate limit = %v rps / %d burst, expected 5/8",
			cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}
	// fields absent from the file get defaults
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("expire hour = %d, expected default 24", cfg.JWT.ExpireHour)
	}
	if cfg.Uploads.Dir != "uploads" {
		t.Errorf("uploads dir = %q, expected default", cfg.Uploads.Dir)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("  :\nnot yaml ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed yaml should return an error")
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SNAPSHOT_KEY", "env-workspace")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, expected env override 7070", cfg.Server.Port)
	}
	if cfg.Snapshot.Key != "env-workspace" {
		t.Errorf("snapshot key = %q, expected env override", cfg.Snapshot.Key)
	}
	if !cfg.Redis.Enabled {
		t.Error("REDIS_ADDR should enable redis")
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("redis addr = %q, expected redis:6379", cfg.Redis.Addr)
	}
}
