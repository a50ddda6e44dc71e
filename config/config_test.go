package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"smokyhost/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL",
		"CACHE_BACKEND", "REDIS_ADDR", "REDIS_PASSWORD",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", c.Server.Port)
	}
	if c.Log.Level != "info" || c.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", c.Log)
	}
	if c.Gemini.Model != "gemini-2.5-flash" || c.Gemini.APIKey != "" {
		t.Errorf("unexpected gemini config %+v", c.Gemini)
	}
	if c.Cache.Backend != "memory" || c.Cache.TTL != 6*time.Hour || !c.Cache.Enabled {
		t.Errorf("unexpected cache config %+v", c.Cache)
	}
	if c.RateLimit.Capacity != 5 || c.RateLimit.Refill != time.Minute {
		t.Errorf("unexpected rate limit %+v", c.RateLimit)
	}
	if c.Scheduler.BriefingCron != "0 6 * * *" {
		t.Errorf("unexpected cron %q", c.Scheduler.BriefingCron)
	}
	if !reflect.DeepEqual(c.Market, domain.DefaultMarketAssumptions()) {
		t.Errorf("expected default market assumptions, got %+v", c.Market)
	}
	if c.SMTP.Configured() {
		t.Errorf("smtp should not be configured by default")
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  port: 9090
cache:
  backend: redis
  ttl: 30m
market:
  base_occupancy_fraction: 0.4
  owned_unit_count: 0
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected untouched defaults to survive, got %v", c.Server.ShutdownTimeout)
	}
	if c.Cache.Backend != "redis" || c.Cache.TTL != 30*time.Minute {
		t.Errorf("unexpected cache config %+v", c.Cache)
	}
	if c.Market.BaseOccupancyFraction != 0.4 || c.Market.OwnedUnitCount != 0 {
		t.Errorf("expected market overrides, got %+v", c.Market)
	}
	if c.Market.BaseAverageDailyRate != 280 || len(c.Market.MonthlySeasonalityFactors) != 12 {
		t.Errorf("expected remaining market defaults, got %+v", c.Market)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("API_KEY", "fallback-key")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "host@example.com")

	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", c.Server.Port)
	}
	if c.Gemini.APIKey != "fallback-key" {
		t.Errorf("expected API_KEY to be used, got %q", c.Gemini.APIKey)
	}
	if c.Cache.Backend != "redis" || c.Cache.Redis.Addr != "cache:6379" {
		t.Errorf("unexpected cache config %+v", c.Cache)
	}
	if !c.SMTP.Configured() {
		t.Errorf("expected smtp to be configured")
	}

	t.Setenv("GEMINI_API_KEY", "primary-key")
	c, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Gemini.APIKey != "primary-key" {
		t.Errorf("expected GEMINI_API_KEY to win, got %q", c.Gemini.APIKey)
	}
}

func TestLoad_Invalid(t *testing.T) {

	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "unknown cache backend", yaml: "cache:\n  backend: memcached\n"},
		{name: "bad log level", yaml: "log:\n  level: loud\n"},
		{name: "port out of range", yaml: "server:\n  port: 70000\n"},
		{name: "bad smtp sender", yaml: "smtp:\n  from: not-an-email\n"},
		{name: "malformed yaml", yaml: "server: [\n"},
		{name: "non numeric PORT", env: map[string]string{"PORT": "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.yaml != "" {
				path = writeConfig(t, tt.yaml)
			}

			if _, err := Load(path); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
