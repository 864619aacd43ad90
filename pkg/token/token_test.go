package token

import (
	"testing"
	"time"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, err := Sign(42, "faculty", "Ada", "ada@campus.edu", "secret", time.Hour, now)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, err := Verify(signed, "secret", now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != 42 {
		t.Fatalf("expected user 42, got %d", id.UserID)
	}
	if id.Role != "faculty" {
		t.Fatalf("expected role faculty, got %q", id.Role)
	}
	if id.Email != "ada@campus.edu" {
		t.Fatalf("unexpected email %q", id.Email)
	}
}

func TestVerify_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, err := Sign(1, "student", "", "", "secret", time.Minute, now)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify(signed, "secret", now.Add(2*time.Minute)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	now := time.Now()

	signed, err := Sign(1, "student", "", "", "secret", time.Hour, now)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify(signed, "other", now); err == nil {
		t.Fatalf("expected signature error")
	}
}
