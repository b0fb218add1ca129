package utils

import (
	"errors"
	"testing"
)

func TestErrorWrappers(t *testing.T) {
	original := errors.New("permission denied")

	tests := []struct {
		name     string
		wrapper  func(string, error) error
		item     string
		expected string
	}{
		{
			name:     "WrapRegisterError",
			wrapper:  WrapRegisterError,
			item:     "literal",
			expected: "failed to register literal: permission denied",
		},
		{
			name:     "WrapParseError",
			wrapper:  WrapParseError,
			item:     "Service.swift",
			expected: "failed to parse Service.swift: permission denied",
		},
		{
			name:     "WrapGenerateError",
			wrapper:  WrapGenerateError,
			item:     "spy",
			expected: "failed to generate spy: permission denied",
		},
		{
			name:     "WrapReadError",
			wrapper:  WrapReadError,
			item:     "Service.swift",
			expected: "failed to read Service.swift: permission denied",
		},
		{
			name:     "WrapWriteError",
			wrapper:  WrapWriteError,
			item:     "ServiceSpy.swift",
			expected: "failed to write ServiceSpy.swift: permission denied",
		},
		{
			name:     "WrapLoadError",
			wrapper:  WrapLoadError,
			item:     "config",
			expected: "failed to load config: permission denied",
		},
		{
			name:     "WrapValidateError",
			wrapper:  WrapValidateError,
			item:     "access level",
			expected: "failed to validate access level: permission denied",
		},
		{
			name:     "WrapProcessError",
			wrapper:  WrapProcessError,
			item:     "Sources/App",
			expected: "failed to process Sources/App: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.wrapper(tt.item, original)
			if result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}
			if !errors.Is(result, original) {
				t.Error("wrapped error should unwrap to the original")
			}
		})
	}
}
