package utils

import (
	"errors"
	"testing"
	"time"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestValidateToken(t *testing.T) {
	token, err := GenerateAccessToken(testKey, "staff-7", "desk@medimaga.local", RoleReceptionist, AccessTokenExpiry)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ValidateToken(testKey, token, RoleAdmin, RoleReceptionist)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "staff-7" || claims.Email != "desk@medimaga.local" || claims.Role != RoleReceptionist {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateToken(testKey, token); err != nil {
		t.Errorf("ValidateToken() without roles error = %v", err)
	}

	if _, err := ValidateToken(testKey, token, RoleAdmin); !errors.Is(err, ErrInsufficientPermissions) {
		t.Errorf("ValidateToken(admin only) error = %v, want ErrInsufficientPermissions", err)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	expired, _ := GenerateAccessToken(testKey, "staff-7", "", RoleAdmin, -time.Second)
	if _, err := ValidateToken(testKey, expired); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expired token error = %v, want ErrTokenExpired", err)
	}

	if _, err := ValidateToken(testKey, "v2.local.garbage"); err == nil {
		t.Errorf("garbage token accepted")
	}

	if _, err := ValidateToken([]byte("short"), expired); !errors.Is(err, ErrInvalidSymmetricKey) {
		t.Errorf("short key error = %v, want ErrInvalidSymmetricKey", err)
	}
	if _, err := GenerateAccessToken([]byte("short"), "u", "", RoleAdmin, time.Hour); !errors.Is(err, ErrInvalidSymmetricKey) {
		t.Errorf("GenerateAccessToken(short key) error = %v", err)
	}
}
