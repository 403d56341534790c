package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrTimeout signals that a store call was cut short by the request deadline.
	// It is distinct from ErrNotFound so callers can tell "absent" from "unknown outcome".
	ErrTimeout      = errors.New("operation timed out")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	// ErrMailDelivery wraps outbound mail transport failures during password recovery.
	ErrMailDelivery = errors.New("mail delivery failed")
	ErrRateLimited  = errors.New("rate limited")
)
