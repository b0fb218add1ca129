package models

import "fmt"

// ArtifactKind represents the kind of test double to generate
type ArtifactKind int

const (
	ArtifactSpy ArtifactKind = iota
	ArtifactMock
	ArtifactFactory
)

// String returns the marker kind name as written in source
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactSpy:
		return "spy"
	case ArtifactMock:
		return "mock"
	case ArtifactFactory:
		return "factory"
	default:
		return "unknown"
	}
}

// Suffix returns the name suffix appended to the declaration name
func (k ArtifactKind) Suffix() string {
	switch k {
	case ArtifactSpy:
		return "Spy"
	case ArtifactMock:
		return "Mock"
	case ArtifactFactory:
		return "+Mock"
	default:
		return ""
	}
}

// Identity returns the artifact identity for a declaration name, which is
// also the basename of the generated file
func (k ArtifactKind) Identity(declName string) string {
	return declName + k.Suffix()
}

// AccessLevel represents the Swift access level of generated declarations
type AccessLevel int

const (
	AccessInternal AccessLevel = iota
	AccessPublic
)

// String returns the access level keyword
func (a AccessLevel) String() string {
	if a == AccessPublic {
		return "public"
	}
	return "internal"
}

// Prefix returns the modifier prefix written before generated declarations.
// Internal is Swift's default and stays implicit.
func (a AccessLevel) Prefix() string {
	if a == AccessPublic {
		return "public "
	}
	return ""
}

// ParseAccessLevel parses an access level name
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch s {
	case "internal", "":
		return AccessInternal, nil
	case "public":
		return AccessPublic, nil
	default:
		return AccessInternal, fmt.Errorf("unknown access level %q (valid: internal, public)", s)
	}
}
