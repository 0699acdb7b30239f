// Package auth validates and hashes the credentials supplied at registration.
package auth

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrNotInstitutional = errors.New("email is not an institutional address")
	ErrWeakPassword     = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the shortest credential accepted at registration.
const MinPasswordLength = 8

// NormalizeEmail trims and lower-cases an address for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email is well formed and belongs to domain
// (e.g. "cornell.edu"). An empty domain accepts any address.
func ValidateEmail(email, domain string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return ErrInvalidEmail
	}
	if domain == "" {
		return nil
	}
	if !strings.HasSuffix(NormalizeEmail(email), "@"+strings.ToLower(domain)) {
		return fmt.Errorf("%w: must end in @%s", ErrNotInstitutional, domain)
	}
	return nil
}

// ValidateCredential checks if the password meets minimum requirements.
func ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// HashCredential validates and bcrypt-hashes a password.
func HashCredential(credential string) (string, error) {
	if err := ValidateCredential(credential); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckCredential reports whether credential matches the stored hash.
func CheckCredential(hash, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)) == nil
}
