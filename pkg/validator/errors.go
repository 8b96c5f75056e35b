package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is absent.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a sequence has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrMisconfiguredRule is returned when a rule cannot be evaluated as configured.
	ErrMisconfiguredRule = errors.New("misconfigured rule")
)
