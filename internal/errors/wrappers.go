package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error wrapping patterns used throughout the codebase

// WrapWithOperation wraps an error with an operation context
func WrapWithOperation(operation, item string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s %s", operation, item)
	return Wrap(UnknownErrorCode, message, cause)
}

// AsDoppel returns err as a DoppelError, wrapping foreign errors under the
// unknown code so collections stay uniform
func AsDoppel(err error) DoppelError {
	var derr DoppelError
	if stderrors.As(err, &derr) {
		return derr
	}
	return Wrap(UnknownErrorCode, err.Error(), err)
}

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, cause error) *SyntaxError {
	message := fmt.Sprintf("failed to parse %s", item)
	return &SyntaxError{
		BaseError: Wrap(SyntaxErrorCode, message, cause),
	}
}

// WrapExtractError wraps an error raised while extracting declarations
func WrapExtractError(declaration string, cause error) *BaseError {
	message := fmt.Sprintf("failed to extract declaration '%s'", declaration)
	return Wrap(ExtractionErrorCode, message, cause).
		WithContext("declaration", declaration)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(generationType, item string, cause error) *GenerationError {
	message := fmt.Sprintf("failed to generate %s", item)
	return &GenerationError{
		BaseError:      Wrap(GenerationErrorCode, message, cause),
		GenerationType: generationType,
		TargetFile:     item,
	}
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *GenerationError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return &GenerationError{
		BaseError:      Wrap(TemplateErrorCode, message, cause),
		GenerationType: "template",
		TargetFile:     templateName,
		Stage:          operation,
	}
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// Convenience functions for common operations

// ParseError creates a syntax error without wrapping
func ParseError(message string) *SyntaxError {
	return NewSyntaxError(message)
}

// ValidateError creates a validation error without wrapping
func ValidateError(field, expected, actual string) *ValidationError {
	return NewValidationError(field, expected, actual)
}

// GenerateError creates a generation error without wrapping
func GenerateError(message string) *GenerationError {
	return NewGenerationError(message)
}

// FileSystemError creates a file system error
func FileSystemError(operation, path, message string) *BaseError {
	fullMessage := fmt.Sprintf("failed to %s file '%s': %s", operation, path, message)
	return New(FileSystemErrorCode, fullMessage).
		WithContext("operation", operation).
		WithContext("path", path)
}

// TemplateError creates a template error
func TemplateError(templateName, operation, message string) *GenerationError {
	fullMessage := fmt.Sprintf("template error in '%s' during %s: %s", templateName, operation, message)
	return &GenerationError{
		BaseError:      New(TemplateErrorCode, fullMessage),
		GenerationType: "template",
		TargetFile:     templateName,
		Stage:          operation,
	}
}

// ConfigurationError creates a configuration error
func ConfigurationError(configType, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", configType, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("config_type", configType)
}

// Error collection helpers

// AddToMultiple adds an error to a MultipleErrors, creating it if nil
func AddToMultiple(multiple **MultipleErrors, err DoppelError) {
	if *multiple == nil {
		*multiple = NewMultipleErrors()
	}
	(*multiple).Add(err)
}

// AddSyntaxError adds a syntax error to a collection
func AddSyntaxError(multiple **MultipleErrors, message string) {
	AddToMultiple(multiple, NewSyntaxError(message))
}

// AddMarkerError adds a marker error to a collection
func AddMarkerError(multiple **MultipleErrors, message, marker string) {
	AddToMultiple(multiple, NewMarkerError(message, marker))
}
