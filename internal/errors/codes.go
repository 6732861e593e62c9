package errors

import (
	"fmt"
)

// ErrorCode represents a specific error type for extraction operations.
type ErrorCode string

const (
	// ErrCodeUnprocessable indicates the model reply could not be understood.
	ErrCodeUnprocessable ErrorCode = "UNPROCESSABLE"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// ExtractionError represents a structured error for extraction operations.
type ExtractionError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Unprocessable creates an error for a model reply that could not be understood.
// The cause is kept for logs but never shown in the user-facing message.
func Unprocessable(msg string, cause error) *ExtractionError {
	return &ExtractionError{Code: ErrCodeUnprocessable, Message: msg, Cause: cause}
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *ExtractionError {
	return &ExtractionError{Code: ErrCodeInvalidArgument, Message: msg}
}

// IsCode checks if an error is of a specific code.
func IsCode(err error, code ErrorCode) bool {
	if extErr, ok := err.(*ExtractionError); ok {
		return extErr.Code == code
	}
	return false
}
