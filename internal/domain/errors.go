package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// IsValidationError reports whether err is one of the domain validation
// sentinels. Callers use this to distinguish bad input from system failures.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrValidation,
		ErrTaskIDEmpty,
		ErrTaskOwnerIDEmpty,
		ErrTaskTitleEmpty,
		ErrTaskStatusInvalid,
		ErrTaskPriorityInvalid,
		ErrUserIDEmpty,
		ErrUserEmailEmpty,
		ErrUserEmailInvalid,
		ErrUserPasswordEmpty,
		ErrUserPasswordLength,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
