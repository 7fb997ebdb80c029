package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidView, "test message: %s", "value")

	if err.Code != ErrCodeInvalidView {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidView)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_VIEW: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRenderFailed, cause, "failed to render")

	if err.Code != ErrCodeRenderFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRenderFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

type codedError struct{}

func (codedError) Error() string { return "coded" }
func (codedError) Code() Code    { return ErrCodeRecursion }

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidView, "test"),
			code:     ErrCodeInvalidView,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidView, "test"),
			code:     ErrCodeRecursion,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "coder type",
			err:      codedError{},
			code:     ErrCodeRecursion,
			expected: true,
		},
		{
			name:     "wrapped coder type",
			err:      Wrap(ErrCodeRenderFailed, codedError{}, "render"),
			code:     ErrCodeRenderFailed,
			expected: true,
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
	if code := GetCode(New(ErrCodeInvalidConfig, "test")); code != ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", code, ErrCodeInvalidConfig)
	}

	if code := GetCode(codedError{}); code != ErrCodeRecursion {
		t.Errorf("GetCode() = %v, want %v", code, ErrCodeRecursion)
	}

	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode() = %v, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidView, "view name cannot be empty")
	if msg := UserMessage(err); msg != "view name cannot be empty" {
		t.Errorf("UserMessage() = %v", msg)
	}

	plain := errors.New("plain error")
	if msg := UserMessage(plain); msg != "plain error" {
		t.Errorf("UserMessage() = %v", msg)
	}
}
