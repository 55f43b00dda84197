package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return newValidationError(field, fmt.Sprintf("must be between %d and %d characters", minLen, maxLen))
	}
	return nil
}

func validateRequiredText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError(field, "is required")
	}
	return validateLength(field, value, 1, maxLen)
}

func validateEmail(email string) error {
	if email == "" {
		return newValidationError("email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return newValidationError("email", "invalid email format")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email so uniqueness checks are case
// insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
