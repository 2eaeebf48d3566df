package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "tourist", "round-trip-secret", 1)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	gotID, role, err := ParseJWT(token, "round-trip-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if gotID != userID {
		t.Errorf("user id = %s, want %s", gotID, userID)
	}
	if role != "tourist" {
		t.Errorf("role = %q, want tourist", role)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "tourist", "secret-a", 1)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestJWTTamperedToken(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "tourist", "tamper-secret", 1)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	if _, _, err := ParseJWT(strings.Join(parts, "."), "tamper-secret"); err == nil {
		t.Fatal("expected verification failure for tampered token")
	}
}

func TestJWTEmptySecret(t *testing.T) {
	if _, err := GenerateJWT(uuid.New(), "tourist", "", 1); err == nil {
		t.Fatal("expected error when secret is not configured")
	}
}
