package auth

import (
	"regexp"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPassword("secret123", hash) {
		t.Error("correct password should verify")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("abc"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if CheckPassword("secret123", "not-a-bcrypt-hash") {
		t.Error("malformed hash should not verify")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{64}$`)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("GenerateSessionToken: %v", err)
		}
		if !pattern.MatchString(token) {
			t.Fatalf("token %q is not 64 hex chars", token)
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
