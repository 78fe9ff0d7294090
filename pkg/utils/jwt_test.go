package utils

import (
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("access token round trip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(42, "maija", "maija@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := manager.ValidateAccessToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("expected user ID 42, got %d", claims.UserID)
		}
		if claims.Username != "maija" {
			t.Errorf("expected username maija, got %s", claims.Username)
		}
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		userID, err := manager.ValidateRefreshToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != 42 {
			t.Errorf("expected user ID 42, got %d", userID)
		}
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(42, "maija", "maija@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Error("expected validation to fail")
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Hour, -time.Hour)
		token, err := expired.GenerateAccessToken(42, "maija", "maija@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Error("expected validation to fail")
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Error("expected hash to differ from the plain password")
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("expected correct password to verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("expected wrong password to fail verification")
	}
}
