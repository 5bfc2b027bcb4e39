package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewVerificationCode returns a random 32 character hex code.
func NewVerificationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Slugify lower-cases and trims name and joins its words with "-".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// NormalizeEmail trims surrounding spaces and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
