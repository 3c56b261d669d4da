package handlers

import "strings"

// Validation limits, matching the original registration rules.
const (
	MinNameLength     = 3
	MaxNameLength     = 30
	MaxEmailLength    = 254
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// SanitizeEmail trims and lowercases email; returns empty if over max length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizePassword trims password; returns empty if over max length.
func SanitizePassword(password string) string {
	s := strings.TrimSpace(password)
	if len(s) > MaxPasswordLength {
		return ""
	}
	return s
}
