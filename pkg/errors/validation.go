package errors

import (
	"strings"
	"unicode"
)

// ValidateMarker validates the substring used to recognize graph files.
// The marker is matched against bare file names, so it must not contain
// path separators, control characters, or NUL bytes.
func ValidateMarker(marker string) error {
	if marker == "" {
		return New(ErrCodeInvalidInput, "marker cannot be empty")
	}
	if strings.ContainsAny(marker, `/\`) {
		return New(ErrCodeInvalidInput, "marker %q cannot contain path separators", marker)
	}
	if hasControl(marker) {
		return New(ErrCodeInvalidInput, "marker contains invalid control characters")
	}
	return nil
}

// ValidateFormat validates an output format. The format is passed to the
// rendering tool as -T<format> and used as the output file extension.
//
// Validation rules:
//   - Format cannot be empty
//   - No path separators or leading dot
//   - No whitespace or control characters
//   - Maximum length of 32 characters
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidInput, "output format cannot be empty")
	}
	if len(format) > 32 {
		return New(ErrCodeInvalidInput, "output format too long (max 32 characters)")
	}
	if strings.HasPrefix(format, ".") || strings.ContainsAny(format, `/\`) {
		return New(ErrCodeInvalidInput, "invalid output format %q", format)
	}
	for _, r := range format {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output format %q contains whitespace or control characters", format)
		}
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
