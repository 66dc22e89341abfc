package config

import (
	"os"
	"testing"
	"time"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		// Setenv registers the restore; the variable must be absent for defaults to apply.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "CPQ_PERSISTENCE_BACKEND", "CPQ_SUBMIT_TIMEOUT", "CPQ_STATE_TABLE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Persistence.Backend != PersistenceMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Persistence.Backend)
	}
	if cfg.QuoteAPI.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.QuoteAPI.Timeout)
	}
	if cfg.DynamoDB.Table != "quote_state" {
		t.Fatalf("unexpected table %q", cfg.DynamoDB.Table)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CPQ_PERSISTENCE_BACKEND", "redis")
	t.Setenv("CPQ_SUBMIT_TIMEOUT", "3s")
	t.Setenv("CPQ_QUOTE_API_MOCK", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Persistence.Backend != PersistenceRedis || cfg.QuoteAPI.Timeout != 3*time.Second || !cfg.QuoteAPI.Mock {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("CPQ_PERSISTENCE_BACKEND", "sqlite")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}

func TestLoad_SessionLimits(t *testing.T) {
	unsetenv(t, "CPQ_SESSION_IDLE_TTL", "CPQ_SESSION_MAX_LIVE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sessions.IdleTTL != 30*time.Minute || cfg.Sessions.MaxLive != 10000 {
		t.Fatalf("unexpected session defaults: %+v", cfg.Sessions)
	}

	t.Setenv("CPQ_SESSION_MAX_LIVE", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero max live sessions")
	}
}
