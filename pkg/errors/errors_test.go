package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "test message: %s", "value")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_FORMAT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "write edges_a.stp")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeIO,
			expected: false,
		},
		{
			name:     "outer code of wrapped error",
			err:      Wrap(ErrCodeIO, New(ErrCodeFileNotFound, "inner"), "outer"),
			code:     ErrCodeIO,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeIO, New(ErrCodeFileNotFound, "inner"), "outer"),
			code:     ErrCodeFileNotFound,
			expected: true,
		},
		{
			name:     "behind fmt wrapper",
			err:      fmt.Errorf("a.stp: %w", Format(3, "bad")),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidOption, "test"), ErrCodeInvalidOption},
		{"outermost wins", Wrap(ErrCodeIO, New(ErrCodeInvalidFormat, "x"), "y"), ErrCodeIO},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
		{"format error", Format(7, "expected integer, got %q", "x"), `malformed STP input: line 7: expected integer, got "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Run("with line", func(t *testing.T) {
		err := &FormatError{Line: 12, Msg: "bad edge"}
		if got, want := err.Error(), "line 12: bad edge"; got != want {
			t.Errorf("Error() = %v, want %v", got, want)
		}
	})

	t.Run("end of input", func(t *testing.T) {
		err := &FormatError{Msg: "missing Section"}
		if got, want := err.Error(), "unexpected end of input: missing Section"; got != want {
			t.Errorf("Error() = %v, want %v", got, want)
		}
	})

	t.Run("reachable through Format", func(t *testing.T) {
		var fe *FormatError
		if !errors.As(Format(4, "x"), &fe) {
			t.Fatal("errors.As(*FormatError) = false, want true")
		}
		if fe.Line != 4 {
			t.Errorf("Line = %d, want 4", fe.Line)
		}
		if fe.Code() != ErrCodeInvalidFormat {
			t.Errorf("Code() = %v, want %v", fe.Code(), ErrCodeInvalidFormat)
		}
	})
}
