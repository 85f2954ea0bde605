package utils

import (
	"testing"
	"time"
)

func TestStateTokenRoundTrip(t *testing.T) {
	tok, err := NewStateToken("secret", 10*time.Minute)
	if err != nil {
		t.Fatalf("NewStateToken: %v", err)
	}
	if err := VerifyStateToken("secret", tok); err != nil {
		t.Fatalf("VerifyStateToken: %v", err)
	}
}

func TestStateTokenWrongSecret(t *testing.T) {
	tok, err := NewStateToken("secret", 10*time.Minute)
	if err != nil {
		t.Fatalf("NewStateToken: %v", err)
	}
	if err := VerifyStateToken("other", tok); err == nil {
		t.Fatal("expected verification failure with the wrong secret")
	}
}

func TestStateTokenExpired(t *testing.T) {
	tok, err := NewStateToken("secret", -time.Minute)
	if err != nil {
		t.Fatalf("NewStateToken: %v", err)
	}
	if err := VerifyStateToken("secret", tok); err == nil {
		t.Fatal("expected verification failure for an expired token")
	}
}

func TestStateTokenGarbage(t *testing.T) {
	if err := VerifyStateToken("secret", "not-a-token"); err == nil {
		t.Fatal("expected verification failure for garbage input")
	}
}
