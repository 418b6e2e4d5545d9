package services

import (
	"testing"
	"time"
)

func TestIssueAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := IssueToken(secret, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	email, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("subject mismatch: %s", email)
	}
}

func TestParseTokenExpired(t *testing.T) {
	secret := "test-secret"

	token, err := IssueToken(secret, "a@x.com", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := ParseToken(secret, token); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret-a", "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}
}

func TestParseTokenMalformed(t *testing.T) {
	if _, err := ParseToken("test-secret", "not-a-jwt"); err == nil {
		t.Fatalf("expected malformed token to fail")
	}
}

func TestTokensAreIndependentlyValid(t *testing.T) {
	secret := "test-secret"

	first, err := IssueToken(secret, "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	second, err := IssueToken(secret, "a@x.com", 2*time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	for _, token := range []string{first, second} {
		email, err := ParseToken(secret, token)
		if err != nil {
			t.Fatalf("ParseToken: %v", err)
		}
		if email != "a@x.com" {
			t.Fatalf("subject mismatch: %s", email)
		}
	}
}
