package domain

import "errors"

// Common domain errors shared across resource managers.
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is returned when the session token is missing or rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the server refuses the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation is returned when input validation fails before submission.
	ErrValidation = errors.New("validation error")
	// ErrRateUnavailable is returned when no exchange-rate source could serve a rate.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
