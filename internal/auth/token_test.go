package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	raw, err := tokens.Issue(42, "ana@example.com", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, email, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
	if email != "ana@example.com" {
		t.Fatalf("expected email ana@example.com, got %q", email)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)

	raw, err := tokens.Issue(7, "old@example.com", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, _, err := tokens.Verify(raw); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a", time.Hour).Issue(1, "a@example.com", time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, _, err := NewTokens("secret-b", time.Hour).Verify(raw); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, _, err := NewTokens("secret", time.Hour).Verify("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
