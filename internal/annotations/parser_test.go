package annotations

import (
	"reflect"
	"strings"
	"testing"

	doppelerrors "github.com/toyz/doppel/internal/errors"
)

func newTestParser(t *testing.T) *MarkerParser {
	t.Helper()

	registry := NewRegistry()
	if err := RegisterBuiltinSchemas(registry); err != nil {
		t.Fatalf("Failed to register builtin schemas: %v", err)
	}
	return NewMarkerParser(registry)
}

func TestMarkerParserBasic(t *testing.T) {
	parser := newTestParser(t)
	location := SourceLocation{File: "test.swift", Line: 1, Column: 1}

	tests := []struct {
		name     string
		input    string
		expected *ParsedMarker
	}{
		{
			name:  "simple spy",
			input: "doppel::spy",
			expected: &ParsedMarker{
				Kind:     KindSpy,
				Flags:    map[string]string{},
				Location: location,
				Raw:      "doppel::spy",
			},
		},
		{
			name:  "mock with access flag",
			input: "doppel::mock -Access=public",
			expected: &ParsedMarker{
				Kind:     KindMock,
				Flags:    map[string]string{"Access": "public"},
				Location: location,
				Raw:      "doppel::mock -Access=public",
			},
		},
		{
			name:  "factory with explicit internal",
			input: "doppel::factory -Access=internal",
			expected: &ParsedMarker{
				Kind:     KindFactory,
				Flags:    map[string]string{"Access": "internal"},
				Location: location,
				Raw:      "doppel::factory -Access=internal",
			},
		},
		{
			name:  "bare flag takes its default",
			input: "doppel::spy -Access",
			expected: &ParsedMarker{
				Kind:     KindSpy,
				Flags:    map[string]string{"Access": "internal"},
				Location: location,
				Raw:      "doppel::spy -Access",
			},
		},
		{
			name:  "quoted value",
			input: `doppel::spy -Access="public"`,
			expected: &ParsedMarker{
				Kind:     KindSpy,
				Flags:    map[string]string{"Access": "public"},
				Location: location,
				Raw:      `doppel::spy -Access="public"`,
			},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "   doppel::spy   ",
			expected: &ParsedMarker{
				Kind:     KindSpy,
				Flags:    map[string]string{},
				Location: location,
				Raw:      "doppel::spy",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, err := parser.ParseMarkerComment(tt.input, location)
			if err != nil {
				t.Fatalf("ParseMarkerComment(%q) failed: %v", tt.input, err)
			}
			if marker == nil {
				t.Fatalf("ParseMarkerComment(%q) returned nil marker", tt.input)
			}
			if !reflect.DeepEqual(marker, tt.expected) {
				t.Errorf("ParseMarkerComment(%q) = %+v, expected %+v", tt.input, marker, tt.expected)
			}
		})
	}
}

func TestMarkerParserNotAMarker(t *testing.T) {
	parser := newTestParser(t)
	location := SourceLocation{File: "test.swift", Line: 1}

	tests := []string{
		"ordinary comment",
		"UserService loads users",
		"NOTE: doppel::spy is documented elsewhere",
		"",
	}

	for _, input := range tests {
		marker, err := parser.ParseMarkerComment(input, location)
		if err != nil {
			t.Errorf("ParseMarkerComment(%q) returned error for non-marker: %v", input, err)
		}
		if marker != nil {
			t.Errorf("ParseMarkerComment(%q) = %+v, expected nil", input, marker)
		}
	}
}

func TestMarkerParserErrors(t *testing.T) {
	parser := newTestParser(t)
	location := SourceLocation{File: "test.swift", Line: 3, Column: 4}

	tests := []struct {
		name      string
		input     string
		wantInErr string
	}{
		{
			name:      "unknown kind",
			input:     "doppel::stub",
			wantInErr: "unknown marker kind",
		},
		{
			name:      "trailing prose",
			input:     "doppel::spy generates a spy",
			wantInErr: "malformed marker",
		},
		{
			name:      "unknown flag",
			input:     "doppel::spy -Scope=public",
			wantInErr: "unknown flag",
		},
		{
			name:      "invalid flag value",
			input:     "doppel::mock -Access=fileprivate",
			wantInErr: "invalid value",
		},
		{
			name:      "missing kind",
			input:     "doppel::",
			wantInErr: "malformed marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, err := parser.ParseMarkerComment(tt.input, location)
			if err == nil {
				t.Fatalf("ParseMarkerComment(%q) = %+v, expected error", tt.input, marker)
			}
			if !strings.Contains(err.Error(), tt.wantInErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantInErr)
			}
		})
	}
}

func TestMarkerParserUnknownFlagSuggestsValidOnes(t *testing.T) {
	parser := newTestParser(t)

	_, err := parser.ParseMarkerComment("doppel::spy -Visibility=public", SourceLocation{File: "a.swift", Line: 1})
	if err == nil {
		t.Fatal("expected unknown flag error")
	}
	markerErr, ok := err.(*doppelerrors.MarkerError)
	if !ok {
		t.Fatalf("expected *MarkerError, got %T", err)
	}
	if !strings.Contains(strings.Join(markerErr.Suggestions(), " "), "-Access") {
		t.Errorf("expected suggestion naming the Access flag, got: %v", markerErr.Suggestions())
	}
}

func TestActivationMarkers(t *testing.T) {
	markers := ActivationMarkers()
	expected := []string{"doppel::spy", "doppel::mock", "doppel::factory"}
	if !reflect.DeepEqual(markers, expected) {
		t.Errorf("ActivationMarkers() = %v, expected %v", markers, expected)
	}
}

func TestContainsActivationMarker(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"// doppel::spy\nprotocol Foo {}", true},
		{"/* doppel::factory */\nstruct Bar {}", true},
		{"let marker = \"doppel::mock\"", true},
		{"protocol Foo {}", false},
		{"// doppel:: spy", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ContainsActivationMarker(tt.text); got != tt.expected {
			t.Errorf("ContainsActivationMarker(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}
