package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_NAME", "JWT_SECRET", "JWT_ACCESS_EXPIRY", "PORT", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DBHost != "localhost" || cfg.DBName != "piys_db" {
		t.Fatalf("unexpected db defaults: %s %s", cfg.DBHost, cfg.DBName)
	}
	if cfg.JWTSecret != "" {
		t.Fatalf("JWT secret must have no baked-in default")
	}
	if cfg.JWTAccessExpiry != 30*time.Minute {
		t.Fatalf("expected 30m access expiry, got %s", cfg.JWTAccessExpiry)
	}
	if cfg.IsProduction() {
		t.Fatalf("expected development environment by default")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "piys",
		DBPassword: "secret",
		DBName:     "piys_db",
		DBSSLMode:  "require",
	}

	want := "host=db.internal user=piys password=secret dbname=piys_db port=5433 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestParseDurationFallback(t *testing.T) {
	if d := parseDuration("garbage"); d != 30*time.Minute {
		t.Fatalf("expected fallback 30m, got %s", d)
	}
	if d := parseDuration("45m"); d != 45*time.Minute {
		t.Fatalf("expected 45m, got %s", d)
	}
}
