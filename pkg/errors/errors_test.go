package errors

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("exit status 1")
	ctx := map[string]any{
		"command": "helm",
		"page":    "getting-started/install",
	}

	err := WrapWithContext(ErrCodeExternalTool, "helm template failed", cause, ctx)

	if err.Code != ErrCodeExternalTool {
		t.Errorf("expected code %s, got %s", ErrCodeExternalTool, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["command"] != "helm" {
		t.Errorf("expected command to be helm")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIs_MatchesOnCode(t *testing.T) {
	sentinel := New(ErrCodeCatalogVersionNotFound, "release line not found")

	err := WrapWithContext(ErrCodeCatalogVersionNotFound, "requested version not present", nil,
		map[string]any{"version": "v9"})
	wrapped := fmt.Errorf("page install.md: %w", err)

	if !errors.Is(wrapped, sentinel) {
		t.Error("expected wrapped error to match sentinel with the same code")
	}
	if errors.Is(wrapped, New(ErrCodeMissingGenerator, "other")) {
		t.Error("expected no match for a different code")
	}
	if errors.Is(wrapped, errors.New("release line not found")) {
		t.Error("expected no match for a plain error")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"structured", New(ErrCodeMissingComponent, "x"), ErrCodeMissingComponent},
		{"wrapped", fmt.Errorf("ctx: %w", New(ErrCodeExternalTool, "x")), ErrCodeExternalTool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeCatalogVersionNotFound,
		ErrCodeMissingComponent,
		ErrCodeMissingGenerator,
		ErrCodeExternalTool,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}

func TestAttrs(t *testing.T) {
	if got := Attrs(errors.New("plain")); got != nil {
		t.Errorf("Attrs(plain) = %v, want nil", got)
	}

	err := fmt.Errorf("block 1: %w", NewWithContext(ErrCodeMissingComponent, "missing",
		map[string]any{"name": "typha", "kind": "component"}))
	want := []any{"code", "MISSING_COMPONENT", "kind", "component", "name", "typha"}
	if got := Attrs(err); !reflect.DeepEqual(got, want) {
		t.Errorf("Attrs() = %v, want %v", got, want)
	}
}
