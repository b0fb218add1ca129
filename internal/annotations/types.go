package annotations

import (
	"fmt"
	"sort"
)

// MarkerKind represents the kind of a doppel marker
type MarkerKind int

const (
	KindSpy MarkerKind = iota
	KindMock
	KindFactory
)

// String returns the marker kind as written in source
func (k MarkerKind) String() string {
	switch k {
	case KindSpy:
		return "spy"
	case KindMock:
		return "mock"
	case KindFactory:
		return "factory"
	default:
		return "unknown"
	}
}

// Marker returns the full raw marker text for this kind
func (k MarkerKind) Marker() string {
	return MarkerPrefix + k.String()
}

// ParseMarkerKind converts a kind name to a MarkerKind
func ParseMarkerKind(s string) (MarkerKind, error) {
	switch s {
	case "spy":
		return KindSpy, nil
	case "mock":
		return KindMock, nil
	case "factory":
		return KindFactory, nil
	default:
		return 0, fmt.Errorf("unknown marker kind: %s", s)
	}
}

// MarkerPrefix introduces every doppel marker comment
const MarkerPrefix = "doppel::"

// ParsedMarker represents a fully parsed marker with validated flags
type ParsedMarker struct {
	Kind     MarkerKind        // marker kind enum
	Flags    map[string]string // explicitly written flags, validated and unquoted
	Location SourceLocation    // source location of the marker comment
	Raw      string            // original marker text
}

// GetFlag returns a flag value with optional default
func (m *ParsedMarker) GetFlag(name string, defaultValue ...string) string {
	if value, exists := m.Flags[name]; exists {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// HasFlag checks if a flag was explicitly written
func (m *ParsedMarker) HasFlag(name string) bool {
	_, exists := m.Flags[name]
	return exists
}

// SourceLocation represents the location of a marker in source code
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

// FlagSpec defines the specification for a marker flag
type FlagSpec struct {
	Required      bool               // whether the flag must be written
	DefaultValue  string             // value used when the flag is written bare
	AllowedValues []string           // exhaustive value set, empty means free-form
	Description   string             // flag description
	Validator     func(string) error // custom validator function
}

// MarkerSchema defines the schema for a marker kind
type MarkerSchema struct {
	Kind        MarkerKind          // marker kind enum
	Description string              // human-readable description
	Flags       map[string]FlagSpec // flag specifications
	Examples    []string            // usage examples
}

// FlagNames returns the declared flag names in sorted order
func (s MarkerSchema) FlagNames() []string {
	names := make([]string, 0, len(s.Flags))
	for name := range s.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
