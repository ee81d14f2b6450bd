package errors

import (
	"testing"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "board1", false},
		{"valid with dash", "my-board", false},
		{"valid with underscore", "my_board", false},
		{"valid uuid", "7c9e6679-7425-40de-944b-e07fc1f90ae7", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBoardID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "standup", false},
		{"with dash", "sprint-42", false},
		{"with underscore", "team_wall", false},
		{"uuid", "7c9e6679-7425-40de-944b-e07fc1f90ae7", false},
		{"with numbers", "board123", false},

		{"empty", "", true},
		{"starts with dash", "-board", true},
		{"with dot", "board.json", true},
		{"with slash", "a/b", true},
		{"with space", "my board", true},
		{"special chars", "board@home", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoardID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBoardID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateShapeID(t *testing.T) {
	if err := ValidateShapeID("rect-1"); err != nil {
		t.Errorf("ValidateShapeID(rect-1) error = %v, want nil", err)
	}

	err := ValidateShapeID("../../etc")
	if err == nil {
		t.Fatal("ValidateShapeID with traversal should fail")
	}
}

func TestValidateBoardName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"simple", "Sprint Retro", false},
		{"unicode", "Plan ☁ 2026", false},
		{"tab allowed", "a\tb", false},

		{"too long", string(make([]byte, 300)), true},
		{"newline", "a\nb", true},
		{"control char", "a\x01b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoardName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBoardName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means default", "", false},
		{"hex six", "#3b82f6", false},
		{"hex three", "#fff", false},
		{"hex eight", "#3b82f6cc", false},
		{"named", "red", false},
		{"named mixed case", "DarkSlateGray", false},

		{"hex four digits", "#ffff", true},
		{"missing hash", "3b82f6", true},
		{"script injection", "red\" onload=\"x", true},
		{"rgb function", "rgb(1,2,3)", true},
		{"spaces", "light blue", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) returned wrong error code: %v", tt.input, err)
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
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidBoard,
		ErrCodeInvalidShape,
		ErrCodeInvalidStyle,
		ErrCodeInvalidFormat,
		ErrCodeInvalidColor,
		ErrCodeInvalidOptions,
		ErrCodeNotFound,
		ErrCodeBoardNotFound,
		ErrCodeShapeNotFound,
		ErrCodeStore,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeRateLimited,
		ErrCodeRender,
		ErrCodeRaster,
		ErrCodeExport,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
