package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures by how the seeder reacts to them
type ErrorType string

const (
	// ErrorTypeUsage indicates a malformed command line, detected before any connection
	ErrorTypeUsage ErrorType = "USAGE"

	// ErrorTypeConfig indicates an invalid environment setting
	ErrorTypeConfig ErrorType = "CONFIG"

	// ErrorTypeSchema indicates an introspection or DDL failure
	ErrorTypeSchema ErrorType = "SCHEMA"

	// ErrorTypeData indicates a failed lookup, insert or update
	ErrorTypeData ErrorType = "DATA"

	// ErrorTypeConnection indicates the database could not be reached
	ErrorTypeConnection ErrorType = "CONNECTION"

	// ErrorTypeConflict indicates another run holds the tenant lock
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new usage error
func NewUsageError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: message,
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewSchemaError creates a new schema error
func NewSchemaError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSchema,
		Message: message,
		Err:     err,
	}
}

// NewDataError creates a new data manipulation error
func NewDataError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeData,
		Message: message,
		Err:     err,
	}
}

// NewConnectionError creates a new connection error
func NewConnectionError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConnection,
		Message: message,
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether any error in err's chain is an AppError of type t
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
