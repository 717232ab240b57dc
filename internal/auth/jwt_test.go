package auth

import (
	"errors"
	"testing"
	"time"
)

func initTestSecret(t *testing.T, secret string) {
	t.Helper()

	t.Setenv("JWT_SECRET", secret)

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret error: %v", err)
	}
}

func TestGenerateAndVerify_Success(t *testing.T) {
	initTestSecret(t, "super-secret")

	email := "student@example.com"

	tok, err := GenerateToken(email, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := VerifyToken(tok)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if got != email {
		t.Fatalf("subject mismatch: got %q want %q", got, email)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	initTestSecret(t, "super-secret")

	tok, err := GenerateToken("student@example.com", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = VerifyToken(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	initTestSecret(t, "right-secret")

	tok, err := GenerateToken("student@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	initTestSecret(t, "wrong-secret")

	_, err = VerifyToken(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	initTestSecret(t, "super-secret")

	_, err := VerifyToken("not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestTokenTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "")
	if got := TokenTTL(); got != DefaultTokenTTL {
		t.Fatalf("default TTL: got %v want %v", got, DefaultTokenTTL)
	}

	t.Setenv("TOKEN_TTL", "90m")
	if got := TokenTTL(); got != 90*time.Minute {
		t.Fatalf("TOKEN_TTL override: got %v want %v", got, 90*time.Minute)
	}

	t.Setenv("TOKEN_TTL", "garbage")
	if got := TokenTTL(); got != DefaultTokenTTL {
		t.Fatalf("unparsable TOKEN_TTL: got %v want %v", got, DefaultTokenTTL)
	}
}
