package errors

import (
	"strings"
	"unicode"
)

// ValidateViewName validates a view name before it is used in a frame or
// passed to the host's template resolution.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 256 characters
//
// Host-specific naming conventions should be enforced separately by the
// host framework.
func ValidateViewName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidView, "view name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidView, "view name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidView, "view name contains invalid control characters")
		}
	}

	// View names feed into template lookup on the host side, so reject
	// anything that smells like a path.
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidView, "view name contains invalid characters: %q", pattern)
		}
	}

	return nil
}
