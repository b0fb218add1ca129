package errors

import (
	"fmt"
	"strings"
)

// SyntaxError represents a source parsing error
type SyntaxError struct {
	*BaseError
	Token    string // the token that caused the error
	Position int    // position in the input where error occurred
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
	}
}

// NewSyntaxErrorWithToken creates a syntax error with token information
func NewSyntaxErrorWithToken(message, token string, position int) *SyntaxError {
	if token != "" {
		message = fmt.Sprintf("%s (near token '%s')", message, token)
	}

	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
		Token:     token,
		Position:  position,
	}
}

// WithToken sets the problematic token
func (e *SyntaxError) WithToken(token string) *SyntaxError {
	e.Token = token
	return e
}

// WithLocation adds location information to the error
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithContext adds context data to the error
func (e *SyntaxError) WithContext(key string, value interface{}) *SyntaxError {
	e.BaseError.WithContext(key, value)
	return e
}

// MarkerError represents a problem with a doppel marker comment
type MarkerError struct {
	*BaseError
	Marker string // the raw marker text
	Kind   string // the marker kind, when known
}

// NewMarkerError creates a new marker error
func NewMarkerError(message, marker string) *MarkerError {
	return &MarkerError{
		BaseError: New(MarkerErrorCode, message),
		Marker:    marker,
	}
}

// NewUnknownFlagError creates a marker error for an unrecognized flag,
// suggesting the flags the marker kind accepts
func NewUnknownFlagError(kind, flag string, validFlags []string) *MarkerError {
	err := &MarkerError{
		BaseError: Newf(MarkerErrorCode, "unknown flag '-%s' on doppel::%s marker", flag, kind),
		Kind:      kind,
	}
	if len(validFlags) > 0 {
		err.WithSuggestion(fmt.Sprintf("valid flags for doppel::%s: -%s", kind, strings.Join(validFlags, ", -")))
	} else {
		err.WithSuggestion(fmt.Sprintf("doppel::%s markers take no flags", kind))
	}
	return err
}

// WithMarker sets the raw marker text
func (e *MarkerError) WithMarker(marker string) *MarkerError {
	e.Marker = marker
	return e
}

// WithLocation adds location information to the error
func (e *MarkerError) WithLocation(loc SourceLocation) *MarkerError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *MarkerError) WithSuggestion(suggestion string) *MarkerError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// ValidationError represents a validation error with detailed context
type ValidationError struct {
	*BaseError
	Field    string // field that failed validation
	Expected string // what was expected
	Actual   string // what was provided
}

// NewValidationError creates a new validation error
func NewValidationError(field, expected, actual string) *ValidationError {
	message := fmt.Sprintf("validation failed for field '%s': expected %s, got %s", field, expected, actual)

	return &ValidationError{
		BaseError: New(ValidationErrorCode, message),
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}

// WithLocation adds location information to the error
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithContext adds context data to the error
func (e *ValidationError) WithContext(key string, value interface{}) *ValidationError {
	e.BaseError.WithContext(key, value)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// SchemaError represents a marker schema violation
type SchemaError struct {
	*BaseError
	SchemaName string // name of the schema that was violated
}

// NewSchemaError creates a new schema error
func NewSchemaError(message string) *SchemaError {
	return &SchemaError{
		BaseError: New(SchemaErrorCode, message),
	}
}

// WithSchemaName sets the schema name
func (e *SchemaError) WithSchemaName(name string) *SchemaError {
	e.SchemaName = name
	return e
}

// WithLocation adds location information to the error
func (e *SchemaError) WithLocation(loc SourceLocation) *SchemaError {
	e.BaseError.WithLocation(loc)
	return e
}

// GenerationError represents an error during artifact generation
type GenerationError struct {
	*BaseError
	GenerationType string // what kind of generation failed (spy, mock, factory, template)
	TargetFile     string // the file being generated
	Stage          string // the generation stage that failed
}

// NewGenerationError creates a new generation error
func NewGenerationError(message string) *GenerationError {
	return &GenerationError{
		BaseError: New(GenerationErrorCode, message),
	}
}

// NewGenerationErrorWithDetails creates a generation error with full context
func NewGenerationErrorWithDetails(generationType, targetFile, stage, message string) *GenerationError {
	fullMessage := fmt.Sprintf("generation failed for %s '%s' during %s: %s", generationType, targetFile, stage, message)

	return &GenerationError{
		BaseError:      New(GenerationErrorCode, fullMessage),
		GenerationType: generationType,
		TargetFile:     targetFile,
		Stage:          stage,
	}
}

// WithStage sets the generation stage
func (e *GenerationError) WithStage(stage string) *GenerationError {
	e.Stage = stage
	return e
}

// WithLocation adds location information to the error
func (e *GenerationError) WithLocation(loc SourceLocation) *GenerationError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *GenerationError) WithSuggestion(suggestion string) *GenerationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}
