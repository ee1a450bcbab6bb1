// Package credentials validates username/password format and handles
// password hashing. It is CPU-bound only: no I/O, no stored state.
package credentials

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// Format policy. The bounds are deliberate choices, not inherited limits:
// usernames are 3-32 chars of [A-Za-z0-9_-], passwords are 8-72 bytes
// (bcrypt truncates beyond 72) and must contain at least one letter and
// one digit.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	MaxPasswordLen = 72

	bcryptCost = 12
)

var (
	ErrUsernameInvalid = errors.New("username does not meet policy")
	ErrPasswordInvalid = errors.New("password does not meet policy")
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateUsername reports whether s is an acceptable username.
func ValidateUsername(s string) error {
	if len(s) < MinUsernameLen || len(s) > MaxUsernameLen {
		return fmt.Errorf("%w: must be %d-%d characters", ErrUsernameInvalid, MinUsernameLen, MaxUsernameLen)
	}
	if !usernameRe.MatchString(s) {
		return fmt.Errorf("%w: only letters, digits, '_' and '-' allowed", ErrUsernameInvalid)
	}
	return nil
}

// ValidatePassword reports whether s is an acceptable password.
func ValidatePassword(s string) error {
	if len(s) < MinPasswordLen || len(s) > MaxPasswordLen {
		return fmt.Errorf("%w: must be %d-%d bytes", ErrPasswordInvalid, MinPasswordLen, MaxPasswordLen)
	}
	if !hasLetter(s) || !hasDigit(s) {
		return fmt.Errorf("%w: must contain at least one letter and one digit", ErrPasswordInvalid)
	}
	return nil
}

// HashPassword derives a salted one-way hash of plaintext. It does not fail
// for any password that passes ValidatePassword.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A malformed hash yields false, never an error; the comparison itself is
// constant-time.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
