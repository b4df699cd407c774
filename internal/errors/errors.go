package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(field, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("%s %s", field, reason),
		Code:    "VALIDATION_FAILED",
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewInvalidFormatError creates an error for input that does not match layout.
// message is the user-facing text.
func NewInvalidFormatError(input, layout, message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidFormat,
		Message: message,
		Code:    "INVALID_FORMAT",
		Cause:   cause,
		Context: map[string]interface{}{
			"input":  input,
			"layout": layout,
		},
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns the text to put in front of the user
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
