package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("Secret_123", "pepper")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hashed == "Secret_123" || !strings.HasPrefix(hashed, "$2a$") {
		t.Fatalf("expected bcrypt hash, got %q", hashed)
	}

	if !CheckPassword(hashed, "Secret_123", "pepper") {
		t.Error("expected password to match")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hashed, err := HashPassword("Secret_123", "pepper")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	tests := []struct {
		name     string
		password string
		key      string
	}{
		{"wrong password", "Secret_124", "pepper"},
		{"wrong key", "Secret_123", "other"},
		{"empty password", "", "pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CheckPassword(hashed, tt.password, tt.key) {
				t.Error("expected mismatch")
			}
		})
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "Secret_123", "pepper") {
		t.Error("expected mismatch for malformed hash")
	}
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("Aa1", 100)

	hashed, err := HashPassword(long, "pepper")
	if err != nil {
		t.Fatalf("expected no error for long password, got: %v", err)
	}
	if !CheckPassword(hashed, long, "pepper") {
		t.Error("expected long password to match")
	}
}
