package util

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	manager := NewJWTManager("top-secret", time.Minute)

	userID := uuid.New()
	token, expiresAt, err := manager.Generate(userID, "user@example.com", "member")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.Role != "member" {
		t.Fatalf("expected role claim, got %q", claims.Role)
	}
}

func TestJWTManagerParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute)
	token, _, err := manager.Generate(uuid.New(), "user@example.com", "member")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManagerParseWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Minute).Generate(uuid.New(), "user@example.com", "member")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := NewJWTManager("secret-b", time.Minute).Parse(token); err == nil {
		t.Fatalf("expected parse error for token signed with another secret")
	}
}
