package utils

import (
	"testing"
	"time"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "cafeteria-pos", time.Hour)

	token, expiresAt, err := m.GenerateToken(RoleManager, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expected expiry in the future, got %v", expiresAt)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Role != RoleManager {
		t.Errorf("expected role %q, got %q", RoleManager, claims.Role)
	}
}

func TestJWTManager_RejectsForeignSecretAndExpiry(t *testing.T) {
	issuer := NewJWTManager("secret", "cafeteria-pos", time.Hour)
	other := NewJWTManager("other-secret", "cafeteria-pos", time.Hour)

	token, _, err := issuer.GenerateToken(RoleManager, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Errorf("expected signature mismatch to fail")
	}

	expired, _, err := issuer.GenerateToken(RoleManager, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := issuer.ValidateToken(expired); err == nil {
		t.Errorf("expected expired token to fail")
	}
}
