// ABOUTME: Typed error kinds shared across the resolution pipeline.
// ABOUTME: Resolution failures are terminal and surfaced verbatim, never retried.

package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode string

const (
	ErrorCodeDeviceNotFound        ErrorCode = "DEVICE_NOT_FOUND"
	ErrorCodeAmbiguousMatch        ErrorCode = "AMBIGUOUS_MATCH"
	ErrorCodePropertyError         ErrorCode = "PROPERTY_ERROR"
	ErrorCodeInvalidDeviceType     ErrorCode = "INVALID_DEVICE_TYPE"
	ErrorCodeOperationNotSupported ErrorCode = "OPERATION_NOT_SUPPORTED"
)

// AppError carries an error code plus the identifier or candidate set that
// produced it, so callers can render actionable messages.
type AppError struct {
	Code       ErrorCode
	Message    string
	Identifier string
	Candidates []string
	cause      error
}

func (err *AppError) Error() string {
	return err.Message
}

func (err *AppError) Unwrap() error {
	return err.cause
}

// NewDeviceNotFound reports that no device matched the given identifier.
func NewDeviceNotFound(identifier string) *AppError {
	return &AppError{
		Code:       ErrorCodeDeviceNotFound,
		Message:    fmt.Sprintf("no device found matching %q", identifier),
		Identifier: identifier,
	}
}

// NewAmbiguousMatch reports that several devices scored too close together to
// pick one. Candidates holds the names of the tied devices.
func NewAmbiguousMatch(identifier string, candidates []string) *AppError {
	return &AppError{
		Code:       ErrorCodeAmbiguousMatch,
		Message:    fmt.Sprintf("identifier %q is ambiguous, matches: %s", identifier, strings.Join(candidates, ", ")),
		Identifier: identifier,
		Candidates: candidates,
	}
}

// NewPropertyError wraps a failure from the audio subsystem.
func NewPropertyError(detail string, cause error) *AppError {
	msg := detail
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", detail, cause)
	}
	return &AppError{
		Code:    ErrorCodePropertyError,
		Message: msg,
		cause:   cause,
	}
}

func NewInvalidDeviceType(detail string) *AppError {
	return &AppError{
		Code:    ErrorCodeInvalidDeviceType,
		Message: detail,
	}
}

func NewOperationNotSupported(detail string) *AppError {
	return &AppError{
		Code:    ErrorCodeOperationNotSupported,
		Message: detail,
	}
}

// IsCode reports whether err (or anything it wraps) is an AppError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
