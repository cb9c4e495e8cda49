package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.BookingWindowDays != 14 {
		t.Errorf("BookingWindowDays = %d, want 14", cfg.BookingWindowDays)
	}
	if cfg.DraftTTL != 30*time.Minute {
		t.Errorf("DraftTTL = %s, want 30m", cfg.DraftTTL)
	}
	if cfg.WhatsAppNumber != "2250143250653" {
		t.Errorf("WhatsAppNumber = %q", cfg.WhatsAppNumber)
	}
	if cfg.SendGridFromName != "SAPHIR Spa" {
		t.Errorf("SendGridFromName = %q", cfg.SendGridFromName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOOKING_WINDOW_DAYS", "7")
	t.Setenv("DRAFT_TTL", "1h")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://saphir.ci, https://www.saphir.ci")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.BookingWindowDays != 7 {
		t.Errorf("BookingWindowDays = %d, want 7", cfg.BookingWindowDays)
	}
	if cfg.DraftTTL != time.Hour {
		t.Errorf("DraftTTL = %s, want 1h", cfg.DraftTTL)
	}
	if !cfg.RedisTLS {
		t.Error("RedisTLS = false, want true")
	}
	if cfg.RateLimitPerSecond != 2.5 {
		t.Errorf("RateLimitPerSecond = %v, want 2.5", cfg.RateLimitPerSecond)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.saphir.ci" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BOOKING_WINDOW_DAYS", "soon")
	t.Setenv("DRAFT_TTL", "whenever")

	cfg := Load()

	if cfg.BookingWindowDays != 14 {
		t.Errorf("BookingWindowDays = %d, want default 14", cfg.BookingWindowDays)
	}
	if cfg.DraftTTL != 30*time.Minute {
		t.Errorf("DraftTTL = %s, want default 30m", cfg.DraftTTL)
	}
}
