package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of domain error
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates that the input provided is invalid
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeCredentialInput indicates a failure while reading credentials interactively
	ErrCodeCredentialInput ErrorCode = "CREDENTIAL_INPUT_ERROR"

	// ErrCodeMetricsAPI indicates a metrics API communication error
	ErrCodeMetricsAPI ErrorCode = "METRICS_API_ERROR"

	// ErrCodeMetricsDecode indicates the metrics API response could not be decoded
	ErrCodeMetricsDecode ErrorCode = "METRICS_DECODE_ERROR"

	// ErrCodeCSVExport indicates a CSV export-related error
	ErrCodeCSVExport ErrorCode = "CSV_EXPORT_ERROR"

	// ErrCodeFileOperation indicates a file operation error
	ErrCodeFileOperation ErrorCode = "FILE_OPERATION_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// NewDomainErrorWithCause creates a new domain error with an underlying cause
func NewDomainErrorWithCause(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// IsErrorCode checks if an error, or any error it wraps, has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// ErrInvalidInput creates an invalid input error
func ErrInvalidInput(field string, reason string) *DomainError {
	return NewDomainError(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetails("field", field).
		WithDetails("reason", reason)
}

// Credential errors

// ErrCredentialInput creates a credential input error
func ErrCredentialInput(credential string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeCredentialInput, fmt.Sprintf("failed to read %s", credential), err).
		WithDetails("credential", credential)
}

// Metrics API errors

// ErrMetricsAPI creates a metrics API error for an unexpected response status
func ErrMetricsAPI(operation string, statusCode int, response string) *DomainError {
	return NewDomainError(ErrCodeMetricsAPI, fmt.Sprintf("metrics API error in %s: unexpected status %d", operation, statusCode)).
		WithDetails("operation", operation).
		WithDetails("statusCode", statusCode).
		WithDetails("response", response)
}

// ErrMetricsAPIWithCause creates a metrics API transport error
func ErrMetricsAPIWithCause(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeMetricsAPI, fmt.Sprintf("metrics API error in %s", operation), err).
		WithDetails("operation", operation)
}

// ErrMetricsDecode creates a response decoding error
func ErrMetricsDecode(reason string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeMetricsDecode, fmt.Sprintf("failed to decode metrics response: %s", reason), err).
		WithDetails("reason", reason)
}

// CSV Export errors

// ErrCSVExportWithCause creates a CSV export error with cause
func ErrCSVExportWithCause(operation string, reason string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeCSVExport, fmt.Sprintf("CSV export error in %s: %s", operation, reason), err).
		WithDetails("operation", operation).
		WithDetails("reason", reason)
}

// File operation errors

// ErrFileOperationWithCause creates a file operation error with cause
func ErrFileOperationWithCause(operation string, path string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeFileOperation, fmt.Sprintf("file operation error in %s", operation), err).
		WithDetails("operation", operation).
		WithDetails("path", path)
}
