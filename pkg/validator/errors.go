package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired carries the default message of the Required* rules.
	ErrFieldRequired = errors.New("field is required")
)
