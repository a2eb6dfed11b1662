package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("salted hashes differ", func(t *testing.T) {
		hash1, err := HashPassword("pw1", bcrypt.MinCost)
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		hash2, err := HashPassword("pw1", bcrypt.MinCost)
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		if hash1 == hash2 {
			t.Error("two hashes of the same password should differ")
		}
	})

	t.Run("both hashes verify", func(t *testing.T) {
		hash1, _ := HashPassword("pw1", bcrypt.MinCost)
		hash2, _ := HashPassword("pw1", bcrypt.MinCost)

		if !VerifyPassword(hash1, "pw1") {
			t.Error("first hash should verify")
		}
		if !VerifyPassword(hash2, "pw1") {
			t.Error("second hash should verify")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	t.Run("match", func(t *testing.T) {
		if !VerifyPassword(hash, "correct-horse") {
			t.Error("VerifyPassword() = false, want true")
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		if VerifyPassword(hash, "battery-staple") {
			t.Error("VerifyPassword() = true, want false")
		}
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		if VerifyPassword("not-a-bcrypt-hash", "anything") {
			t.Error("malformed hash should fail verification, not match")
		}
	})

	t.Run("empty stored hash", func(t *testing.T) {
		if VerifyPassword("", "anything") {
			t.Error("empty hash should fail verification")
		}
	})
}
