// Package password wraps bcrypt hashing and verification of user credentials.
// Each hash carries its own random salt, and verification is constant-time.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost 12: slower than the default, acceptable for a login-only flow
const hashCost = 12

// Hash derives a one-way bcrypt digest of the plaintext password.
// The same plaintext produces a different digest on every call (random salt).
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored bcrypt digest.
func Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
