package errors

import "testing"

func TestValidateMarker(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", ".gv", false},
		{"dot", ".dot", false},
		{"infix", "_graph", false},

		{"empty", "", true},
		{"slash", "out/.gv", true},
		{"backslash", `out\.gv`, true},
		{"null byte", ".g\x00v", true},
		{"newline", ".gv\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarker(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMarker(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateMarker(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"png", "png", false},
		{"svg", "svg", false},
		{"cairo variant", "png:cairo", false},

		{"empty", "", true},
		{"leading dot", ".png", true},
		{"path traversal", "../png", true},
		{"backslash", `png\x`, true},
		{"space", "png x", true},
		{"too long", string(make([]byte, 40)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateFormat(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidPath,
		ErrCodeInvalidConfig,
		ErrCodeDirNotFound,
		ErrCodeToolNotFound,
		ErrCodeRenderFailed,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
