package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("test-secret", "fitness-booking", time.Minute, Claims{
		UserID: 42,
		Email:  "john.doe@example.com",
		Role:   "client",
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "john.doe@example.com" || claims.Role != "client" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := NewAccessToken("test-secret", "fitness-booking", time.Minute, Claims{UserID: 1})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatalf("expected signature validation to fail")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := NewAccessToken("test-secret", "fitness-booking", -time.Minute, Claims{UserID: 1})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
