package config

import (
	"os"
	"testing"
)

func TestLoad_UsesDefaultsWhenUnset(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_DIR", "AI_API_KEY", "DATABASE_URL", "REDIS_URL", "JWT_SECRET", "ADMIN_PASSWORD_HASH"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, want empty default", cfg.DataDir)
	}
	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("RedisURL = %q, want default", cfg.RedisURL)
	}
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	os.Setenv("PORT", "9090")
	defer os.Unsetenv("PORT")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
}
