package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^(?:[a-zA-Z0-9_'^&+-])+(?:\.(?:[a-zA-Z0-9_'^&+-])+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail validates an already normalized email address
func IsValidEmail(email string) bool {
	return email != "" && emailRegex.MatchString(email)
}

// NormalizeText lower-cases and trims free text for comparisons
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
