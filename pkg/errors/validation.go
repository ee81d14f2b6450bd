package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateIdentifier validates a board or shape identifier for safety.
// Identifiers end up in URLs, filenames and cache keys, so the rules
// are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "identifier too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidInput, "identifier contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// boardIDRegex matches identifiers safe to embed in file paths and URLs.
var boardIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateBoardID validates a board identifier.
// Board IDs become filenames in the file store and path segments in the API.
func ValidateBoardID(id string) error {
	if err := ValidateIdentifier(id); err != nil {
		return err
	}

	if !boardIDRegex.MatchString(id) {
		return New(ErrCodeInvalidBoard, "invalid board id: %q", id)
	}

	return nil
}

// ValidateShapeID validates a shape identifier within a board.
func ValidateShapeID(id string) error {
	if err := ValidateIdentifier(id); err != nil {
		return err
	}

	if !boardIDRegex.MatchString(id) {
		return New(ErrCodeInvalidShape, "invalid shape id: %q", id)
	}

	return nil
}

// ValidateBoardName validates a human-readable board name.
// Names may be empty; when present they must be printable and short.
func ValidateBoardName(name string) error {
	if len(name) > 256 {
		return New(ErrCodeInvalidBoard, "board name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) && r != '\t' {
			return New(ErrCodeInvalidBoard, "board name contains invalid control characters")
		}
	}

	return nil
}

// hexColorRegex matches 3-, 6- and 8-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// namedColorRegex matches CSS named colors (letters only).
var namedColorRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidateColor validates a stroke or fill color string.
// Accepts the empty string (meaning "use the style default"), hex colors
// and CSS color keywords. Anything else is rejected so colors can be
// emitted into SVG attributes without escaping surprises.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}

	if len(color) > 64 {
		return New(ErrCodeInvalidColor, "color value too long")
	}

	if hexColorRegex.MatchString(color) || namedColorRegex.MatchString(color) {
		return nil
	}

	return New(ErrCodeInvalidColor, "invalid color: %q", color)
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
