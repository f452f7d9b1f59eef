package service

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frontridge/frontridge-api/internal/core/domain"
)

func TestCredentialVerifier_Plaintext_Match(t *testing.T) {
	v := NewCredentialVerifier("", "hunter2", zerolog.Nop())

	ok, err := v.Verify("hunter2")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestCredentialVerifier_Plaintext_Mismatch(t *testing.T) {
	v := NewCredentialVerifier("", "hunter2", zerolog.Nop())

	// Same length, different content.
	ok, err := v.Verify("hunter3")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestCredentialVerifier_Plaintext_LengthMismatch(t *testing.T) {
	v := NewCredentialVerifier("", "hunter2", zerolog.Nop())

	if ok, _ := v.Verify("hunter22"); ok {
		t.Fatalf("expected mismatch for longer input")
	}
	if ok, _ := v.Verify(""); ok {
		t.Fatalf("expected mismatch for empty input")
	}
}

func TestCredentialVerifier_Hash_Match(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	v := NewCredentialVerifier(string(hash), "", zerolog.Nop())

	ok, err := v.Verify("s3cret")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestCredentialVerifier_Hash_Mismatch(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	v := NewCredentialVerifier(string(hash), "", zerolog.Nop())

	if ok, _ := v.Verify("wrong"); ok {
		t.Fatalf("expected mismatch")
	}
}

func TestCredentialVerifier_Hash_TakesPrecedence(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	v := NewCredentialVerifier(string(hash), "plain-pass", zerolog.Nop())

	if ok, _ := v.Verify("plain-pass"); ok {
		t.Fatalf("plaintext credential must be ignored when a hash is configured")
	}
	if ok, _ := v.Verify("hashed-pass"); !ok {
		t.Fatalf("expected hash match")
	}
}

func TestCredentialVerifier_MalformedHash_FailsClosed(t *testing.T) {
	v := NewCredentialVerifier("not-a-bcrypt-hash", "", zerolog.Nop())

	ok, err := v.Verify("anything")
	if err != nil {
		t.Fatalf("internal comparison errors must not propagate, got %v", err)
	}
	if ok {
		t.Fatalf("expected fail-closed mismatch")
	}
}

func TestCredentialVerifier_NotConfigured(t *testing.T) {
	v := NewCredentialVerifier("", "", zerolog.Nop())

	if _, err := v.Verify("anything"); err != domain.ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
