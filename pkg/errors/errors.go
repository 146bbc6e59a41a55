package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeNoActiveLocation

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeStoreWrite
	ErrorTypeUpstreamUnavailable
	ErrorTypeUpstreamMalformed

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNoActiveLocation:
		return "NO_ACTIVE_LOCATION"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeStoreWrite:
		return "STORE_WRITE_FAILURE"
	case ErrorTypeUpstreamUnavailable:
		return "UPSTREAM_UNAVAILABLE"
	case ErrorTypeUpstreamMalformed:
		return "UPSTREAM_MALFORMED"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError          = ErrorTypeValidation
	NotFoundError            = ErrorTypeNotFound
	NoActiveLocationError    = ErrorTypeNoActiveLocation
	DatabaseError            = ErrorTypeDatabase
	StoreWriteError          = ErrorTypeStoreWrite
	UpstreamUnavailableError = ErrorTypeUpstreamUnavailable
	UpstreamMalformedError   = ErrorTypeUpstreamMalformed
	ConfigurationError       = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewNoActiveLocationError() *AppError {
	return New(NoActiveLocationError, "no active location selected")
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewStoreWriteError(message string, cause error) *AppError {
	return Wrap(StoreWriteError, message, cause)
}

func NewUpstreamUnavailableError(message string, cause error) *AppError {
	return Wrap(UpstreamUnavailableError, message, cause)
}

func NewUpstreamMalformedError(message string, cause error) *AppError {
	return Wrap(UpstreamMalformedError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the outermost AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNoActiveLocationError(err error) bool {
	return TypeOf(err) == NoActiveLocationError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsStoreWriteError(err error) bool {
	return TypeOf(err) == StoreWriteError
}

func IsUpstreamUnavailableError(err error) bool {
	return TypeOf(err) == UpstreamUnavailableError
}

func IsUpstreamMalformedError(err error) bool {
	return TypeOf(err) == UpstreamMalformedError
}

// IsUpstreamError reports whether err came from a provider adapter.
func IsUpstreamError(err error) bool {
	t := TypeOf(err)
	return t == UpstreamUnavailableError || t == UpstreamMalformedError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
