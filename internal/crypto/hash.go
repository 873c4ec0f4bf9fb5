package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for new digests.
const HashCost = 10

var ErrInvalidHashFormat = errors.New("invalid password digest")

// HashPassword returns a bcrypt digest of password with a fresh random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt digest.
// A mismatch is not an error; a digest that cannot be parsed is.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHashFormat, err)
	}
}
