package auth_test

import (
	"testing"
	"time"

	"github.com/bookhaven/bookstore-admin/pkg/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := auth.GenerateToken(42, "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want admin", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken(1, "staff", "staff", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := auth.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
