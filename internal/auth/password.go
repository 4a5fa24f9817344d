package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest work factor accepted for new digests. Digests
// produced with a higher cost verify fine because bcrypt embeds the cost in
// the digest itself.
const MinBcryptCost = 10

var (
	// ErrPasswordMismatch means the secret does not match the digest.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrCorruptDigest means the stored digest is not a valid bcrypt hash.
	ErrCorruptDigest = errors.New("corrupt password digest")
)

// HashPassword hashes a plaintext password with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value using
// bcrypt's constant-time comparison. A malformed digest is reported as
// ErrCorruptDigest so callers can distinguish a data-integrity fault from
// a plain wrong password.
func ComparePassword(hashed, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return ErrCorruptDigest
	}
}
