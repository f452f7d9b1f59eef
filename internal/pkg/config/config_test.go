package config

import (
	"strings"
	"testing"
	"time"
)

func baseConfig() *Config {
	return &Config{
		Env:             "development",
		AdminPassword:   "hunter2",
		SessionDuration: time.Hour,
		CacheBackend:    "memory",
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := baseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_MissingCredential(t *testing.T) {
	cfg := baseConfig()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = ""

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "admin credential") {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestValidate_HashAloneSuffices(t *testing.T) {
	cfg := baseConfig()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_DevSecretFallback(t *testing.T) {
	cfg := baseConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.SessionSecret == "" {
		t.Fatalf("development must fall back to a signing secret")
	}
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Fatalf("production must refuse to start without a secret, got %v", err)
	}

	cfg.SessionSecret = "configured-secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_SessionDurationFallback(t *testing.T) {
	cfg := baseConfig()
	cfg.SessionDuration = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.SessionDuration != time.Hour {
		t.Fatalf("expected 1h fallback, got %v", cfg.SessionDuration)
	}
}

func TestValidate_UnknownCacheBackend(t *testing.T) {
	cfg := baseConfig()
	cfg.CacheBackend = "memcached"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown cache backend")
	}
}

func TestS3Config_Configured(t *testing.T) {
	full := S3Config{AccessKey: "k", SecretKey: "s", Bucket: "b"}
	if !full.Configured() {
		t.Fatalf("expected configured")
	}
	for _, partial := range []S3Config{
		{SecretKey: "s", Bucket: "b"},
		{AccessKey: "k", Bucket: "b"},
		{AccessKey: "k", SecretKey: "s"},
	} {
		if partial.Configured() {
			t.Fatalf("partial credentials must not count as configured: %+v", partial)
		}
	}
}

func TestSMTPConfig_Configured(t *testing.T) {
	full := SMTPConfig{Host: "mail.example", From: "noreply@example.com", To: "owner@example.com"}
	if !full.Configured() {
		t.Fatalf("expected configured")
	}
	if (SMTPConfig{Host: "mail.example"}).Configured() {
		t.Fatalf("host alone must not count as configured")
	}
}
