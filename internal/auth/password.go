package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with configured cost.
// bcrypt salts each call, so hashing the same password twice yields
// different strings.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored hash.
// A malformed stored hash is a mismatch, not an error.
func VerifyPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
