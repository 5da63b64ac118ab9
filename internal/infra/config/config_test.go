package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/contacts")
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JWTAlgorithm != "HS256" {
		t.Fatalf("JWTAlgorithm want HS256, got %s", cfg.JWTAlgorithm)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("AccessTokenTTL want 15m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 7*24*time.Hour {
		t.Fatalf("RefreshTokenTTL want 168h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.VerifyTokenTTL != 7*24*time.Hour {
		t.Fatalf("VerifyTokenTTL want 168h, got %v", cfg.VerifyTokenTTL)
	}
	if cfg.CacheTTL != 900*time.Second {
		t.Fatalf("CacheTTL want 900s, got %v", cfg.CacheTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("REFRESH_TOKEN_TTL", "3h")
	t.Setenv("CACHE_TTL", "60s")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("AccessTokenTTL want 2m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 3*time.Hour {
		t.Fatalf("RefreshTokenTTL want 3h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("CacheTTL want 60s, got %v", cfg.CacheTTL)
	}
	if cfg.HTTPAddress != ":9090" {
		t.Fatalf("HTTPAddress want :9090, got %s", cfg.HTTPAddress)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("REDIS_ADDRESS", "r")
	t.Setenv("SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing SECRET_KEY")
	}
}
