package errors

import (
	"strings"
	"testing"
)

func TestValidateCoordinatePart(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"group", "com.google.guava", false},
		{"artifact with dash", "commons-lang3", false},
		{"artifact with underscore", "kotlinx_coroutines", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"path traversal", "com..evil", true},
		{"slash", "com/evil", true},
		{"backslash", "com\\evil", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"interpolation", "$group", true},
		{"leading dot", ".hidden", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinatePart(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinatePart(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCoordinate) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidCoordinate)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://repo1.maven.org/maven2", false},
		{"http", "http://localhost:8081/repository", false},
		{"empty", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no scheme", "repo1.maven.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateURL(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
