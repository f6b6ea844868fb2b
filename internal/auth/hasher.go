package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Work factors for stored credentials.
const (
	RegistrationCost = 12
	SeedCost         = 10
)

// Hasher hashes and verifies user passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using the given bcrypt cost.
func NewHasher(cost int) Hasher {
	return Hasher{cost: cost}
}

// Hash returns a self-describing bcrypt digest (algorithm, cost and salt
// are embedded).
func (h Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is a
// mismatch.
func (h Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
