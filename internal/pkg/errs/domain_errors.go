package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Input validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrServiceNotFound  = errors.New("service not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrServiceInactive  = errors.New("service is inactive")
	ErrProviderInactive = errors.New("provider is inactive")

	// Booking errors
	ErrSlotUnavailable     = errors.New("slot unavailable")
	ErrBookingTimeout      = errors.New("booking timed out")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatusChange = errors.New("invalid appointment status change")

	// Operation errors
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrSideEffectFailure  = errors.New("post-commit side effect failure")
)
