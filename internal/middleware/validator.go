package middleware

import (
	"errors"
	"strings"
)

// Input validation and sanitization for the snap form/JSON fields.
// The messages are user-facing: the HTTP layer writes them back as
// plain text on a 400.

const (
	// DefaultMaxThesisChars caps the thesis length when config does
	// not override it.
	DefaultMaxThesisChars = 1200

	// maxNumericChars caps the optional P/E and FCF-yield fields;
	// anything longer is noise, not a number.
	maxNumericChars = 32
)

var (
	ErrEmptyThesis   = errors.New("Add a brief 6–10 line thesis to score.")
	ErrThesisTooLong = errors.New("Trim input to 1,200 characters.")
)

// ValidateThesis checks a pre-trimmed thesis against the length
// bounds. maxChars <= 0 falls back to the default cap.
func ValidateThesis(thesis string, maxChars int) error {
	if maxChars <= 0 {
		maxChars = DefaultMaxThesisChars
	}
	if thesis == "" {
		return ErrEmptyThesis
	}
	if len([]rune(thesis)) > maxChars {
		return ErrThesisTooLong
	}
	return nil
}

// SanitizeString removes null bytes and control characters (keeping
// tabs and newlines, which carry paragraph structure) and trims the
// result.
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// SanitizeNumericField trims an optional numeric input and drops it
// entirely when it is implausibly long. The scorer treats a missing
// value as Needs Data, so dropping is safe.
func SanitizeNumericField(raw string) string {
	cleaned := SanitizeString(raw)
	if len(cleaned) > maxNumericChars {
		return ""
	}
	return cleaned
}
