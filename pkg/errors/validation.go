package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// mavenIDRegex matches Maven groupId and artifactId segments.
var mavenIDRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.\-]*$`)

// ValidateCoordinatePart validates a groupId or artifactId before it is used
// to build a repository URL. It rejects anything that could escape the
// repository path:
//   - No empty parts
//   - No control characters
//   - No path traversal sequences (..)
//   - No slashes or backslashes
//   - Maximum length of 256 characters
func ValidateCoordinatePart(part string) error {
	if part == "" {
		return New(ErrCodeInvalidCoordinate, "coordinate part cannot be empty")
	}

	if len(part) > 256 {
		return New(ErrCodeInvalidCoordinate, "coordinate part too long (max 256 characters)")
	}

	for _, r := range part {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCoordinate, "coordinate part contains invalid control characters")
		}
	}

	if strings.Contains(part, "..") {
		return New(ErrCodeInvalidCoordinate, "coordinate part contains invalid characters: %q", "..")
	}

	if !mavenIDRegex.MatchString(part) {
		return New(ErrCodeInvalidCoordinate, "invalid coordinate part: %q", part)
	}

	return nil
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
