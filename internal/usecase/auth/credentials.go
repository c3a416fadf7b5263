package auth

import (
	"fmt"

	domain "fieldcms/backend/internal/domain/auth"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the fixed bcrypt work factor for stored credentials.
const passwordHashCost = 12

// HashPassword produces a salted adaptive-cost hash of the plaintext. The
// salt is fresh per call, so equal inputs yield different hashes.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashingFailure, err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash using
// the salt embedded in it. bcrypt compares in constant time; a mismatch is
// an expected outcome, not an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
