package services

import (
	"testing"
	"time"
)

func newTestJWTService() *JWTService {
	return &JWTService{secretKey: "test-secret", expiry: time.Hour}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken("user-123", "amel@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected user id user-123, got %s", claims.UserID)
	}
	if claims.Email != "amel@example.com" {
		t.Errorf("unexpected email %s", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("unexpected role %s", claims.Role)
	}
}

func TestGenerateTokenRequiresIdentity(t *testing.T) {
	svc := newTestJWTService()

	if _, err := svc.GenerateToken("", "amel@example.com", "user"); err == nil {
		t.Error("expected error for empty user id")
	}
	if _, err := svc.GenerateToken("user-123", "", "user"); err == nil {
		t.Error("expected error for empty email")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := newTestJWTService().GenerateToken("user-123", "amel@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := &JWTService{secretKey: "different-secret", expiry: time.Hour}
	if _, err := other.VerifyToken(token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret", expiry: -time.Minute}

	token, err := svc.GenerateToken("user-123", "amel@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := svc.VerifyToken(token); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := newTestJWTService().VerifyToken("not.a.token"); err == nil {
		t.Error("expected verification to fail for malformed input")
	}
}
