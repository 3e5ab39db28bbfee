package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port got %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend got %s", cfg.DataBackend)
	}
	if cfg.StorageTimeout != 5*time.Second {
		t.Fatalf("default storage timeout got %v", cfg.StorageTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("STORAGE_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg := Load()
	if cfg.Port != "9999" || cfg.DataBackend != "memory" ||
		cfg.StorageTimeout != 2*time.Second || cfg.RateLimitPerMinute != 10 {
		t.Fatalf("env not honored: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Port:               "not-a-port",
		DataBackend:        "cloud",
		StorageTimeout:     time.Millisecond,
		RateLimitPerMinute: 0,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"invalid port", "invalid data backend", "invalid storage timeout", "invalid rate limit"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}
