package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"no cause", New(ErrCodeInvalidInput, "bad marker %q", ""), `INVALID_INPUT: bad marker ""`},
		{"with cause", Wrap(ErrCodeDirNotFound, fs.ErrNotExist, "list %s", "out"), "DIR_NOT_FOUND: list out: file does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	base := Wrap(ErrCodeRenderFailed, errors.New("exit status 1"), "render a.gv")
	wrapped := errors.Join(errors.New("outer"), base)

	if !Is(wrapped, ErrCodeRenderFailed) {
		t.Error("Is should find code through wrapping")
	}
	if Is(wrapped, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(base); got != ErrCodeRenderFailed {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeRenderFailed)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	err := Wrap(ErrCodeDirNotFound, fs.ErrNotExist, "list dir")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "empty marker")); got != "empty marker" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(Wrap(ErrCodeToolNotFound, errors.New("not in PATH"), "dot")); got != "dot: not in PATH" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}
