package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	TypeValidation ErrorType = iota
	TypeAPI
	TypeNotFound
	TypeExport
	TypeSystem
)

// AppError is a structured application error with a stable code.
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewValidationError reports invalid user input.
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:    TypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewAPIError reports a failure talking to the World Aquatics API.
func NewAPIError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeAPI,
		Code:     code,
		Message:  message,
		Internal: err,
	}
}

// NewNotFoundError reports a missing remote resource.
func NewNotFoundError(code, message string) *AppError {
	return &AppError{
		Type:    TypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewExportError reports a failure writing the output spreadsheet.
func NewExportError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeExport,
		Code:     code,
		Message:  message,
		Internal: err,
	}
}

// NewSystemError reports an internal failure.
func NewSystemError(code, message string, err error) *AppError {
	return &AppError{
		Type:     TypeSystem,
		Code:     code,
		Message:  message,
		Internal: err,
	}
}

// IsType reports whether err is, or wraps, an AppError of the given
// type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Type == t
}
