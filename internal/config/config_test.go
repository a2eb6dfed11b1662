package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 30 {
		t.Errorf("AccessTokenTTLMinutes = %d, want 30", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.CORS.AllowOrigins != "*" {
		t.Errorf("AllowOrigins = %q, want *", cfg.CORS.AllowOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("AUTH_JWT_SECRET", "override-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.App.Port)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 15 {
		t.Errorf("AccessTokenTTLMinutes = %d, want 15", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.JWTSecret != "override-secret" {
		t.Errorf("JWTSecret = %q, want override-secret", cfg.Auth.JWTSecret)
	}
}

func TestAddrAndTimeouts(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "3000", RequestTimeoutSeconds: 10}
	if app.Addr() != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q", app.Addr())
	}
	if app.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout() = %v", app.RequestTimeout())
	}

	none := AppConfig{}
	if none.RequestTimeout() != 0 {
		t.Errorf("zero timeout should disable, got %v", none.RequestTimeout())
	}

	redis := RedisConfig{CacheTTLSec: 0}
	if redis.CacheTTL() != time.Minute {
		t.Errorf("CacheTTL() fallback = %v, want 1m", redis.CacheTTL())
	}
}
