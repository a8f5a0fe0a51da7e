package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt digest from the given plaintext password.
// The digest embeds a fresh random salt and the work factor, so no separate
// salt storage is needed.
//
// Returns an error if bcrypt rejects the input (e.g. the 72-byte length
// limit is exceeded).
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. The comparison is constant-time inside bcrypt.
//
// A malformed digest yields false, never a panic: bcrypt surfaces it as an
// ordinary mismatch error which is swallowed here, because the caller only
// ever needs a yes/no answer.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
