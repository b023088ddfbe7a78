// utils/validator.go - Input validation and normalization
package utils

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizePhone strips all whitespace from a phone-like identity key.
func NormalizePhone(phone string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(phone), "")
}

// NormalizeNID strips all whitespace from a national id.
func NormalizeNID(nid string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(nid), "")
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
