package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Env != "local" || cfg.IsProduction() {
		t.Errorf("expected local env, got %q", cfg.Env)
	}
	if cfg.Relay.Endpoint != "https://api.web3forms.com/submit" {
		t.Errorf("unexpected relay endpoint: %s", cfg.Relay.Endpoint)
	}
	if cfg.Contact.MinDwell != 5*time.Second {
		t.Errorf("unexpected min dwell: %s", cfg.Contact.MinDwell)
	}
	if cfg.Server.TrustProxy {
		t.Errorf("forwarded headers must not be trusted by default")
	}
	if cfg.Contact.SuccessDisplay != 5*time.Second {
		t.Errorf("unexpected success display: %s", cfg.Contact.SuccessDisplay)
	}
	if cfg.Contact.MaxFiles != 5 {
		t.Errorf("unexpected max files: %d", cfg.Contact.MaxFiles)
	}
	if cfg.Contact.MaxFileSize != 10*1024*1024 {
		t.Errorf("unexpected max file size: %d", cfg.Contact.MaxFileSize)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("unexpected rate limit window: %s", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.RedisURL != "" {
		t.Errorf("expected in-memory limiter by default, got %s", cfg.RateLimit.RedisURL)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"OMG_WEB_SERVER_PORT":                 "9090",
		"OMG_WEB_SERVER_READ_TIMEOUT":         "20s",
		"OMG_WEB_SERVER_TRUST_PROXY":          "true",
		"OMG_WEB_CONTACT_SUCCESS_DISPLAY":     "8s",
		"OMG_WEB_SITE_URL":                    "https://example.test/",
		"OMG_WEB_RELAY_ACCESS_KEY":            "key-123",
		"OMG_WEB_CONTACT_MAX_FILES":           "3",
		"OMG_WEB_RATE_LIMIT_WINDOW":           "1m",
		"OMG_WEB_RATE_LIMIT_REDIS_URL":        "redis://localhost:6379/0",
		"OMG_WEB_ANALYTICS_GA_MEASUREMENT_ID": "G-TEST",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port override, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("expected read timeout override, got %s", cfg.Server.ReadTimeout)
	}
	if !cfg.Server.TrustProxy {
		t.Errorf("expected proxy trust override")
	}
	if cfg.Contact.SuccessDisplay != 8*time.Second {
		t.Errorf("unexpected success display: %s", cfg.Contact.SuccessDisplay)
	}
	if cfg.SiteURL != "https://example.test" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.SiteURL)
	}
	if cfg.Relay.AccessKey != "key-123" {
		t.Errorf("unexpected access key: %s", cfg.Relay.AccessKey)
	}
	if cfg.Contact.MaxFiles != 3 {
		t.Errorf("unexpected max files: %d", cfg.Contact.MaxFiles)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected window: %s", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.RedisURL == "" {
		t.Errorf("expected redis url")
	}
	if cfg.Analytics.GA4MeasurementID != "G-TEST" {
		t.Errorf("unexpected GA id: %s", cfg.Analytics.GA4MeasurementID)
	}
}

func TestLoadFallsBackToPlatformPort(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "7070"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected PORT fallback, got %s", cfg.Server.Port)
	}
	if cfg.Addr() != ":7070" {
		t.Fatalf("unexpected addr %s", cfg.Addr())
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nOMG_WEB_SERVER_PORT=6060\nexport OMG_WEB_CONTENT_DIR=\"/srv/content\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"OMG_WEB_CONTENT_DIR": "/override",
	}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "6060" {
		t.Errorf("expected port from .env, got %s", cfg.Server.Port)
	}
	if cfg.ContentDir != "/override" {
		t.Errorf("expected env map to win over .env, got %s", cfg.ContentDir)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	env := map[string]string{
		"OMG_WEB_ENV":               "prod",
		"OMG_WEB_SESSION_BLOCK_KEY": "short",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := vErr.Fields()
	if len(fields) != 2 || fields[0] != "Session.HashKey" || fields[1] != "Session.BlockKey" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
