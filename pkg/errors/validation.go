package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePattern checks that a glob pattern is non-empty and syntactically
// valid for [filepath.Match].
func ValidatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return New(ErrCodeInvalidPattern, "pattern cannot be empty")
	}
	for _, r := range pattern {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPattern, "pattern contains invalid characters")
		}
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return Wrap(ErrCodeInvalidPattern, err, "invalid pattern %q", pattern)
	}
	return nil
}

// ValidateToken checks that s can appear as a single whitespace-separated
// field in an output record.
func ValidateToken(name, s string) error {
	if s == "" {
		return New(ErrCodeInvalidOption, "%s cannot be empty", name)
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidOption, "%s %q must not contain whitespace", name, s)
		}
	}
	return nil
}

// ValidateOneOf checks that value is one of allowed.
func ValidateOneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeInvalidOption, "unknown %s %q (available: %s)", name, value, strings.Join(allowed, ", "))
}
