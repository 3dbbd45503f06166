package store

import "errors"

var (
	// ErrNotFound is returned when no user matches the given email.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a signup reuses an existing email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrBookingNotFound is returned when a booking index is out of range.
	ErrBookingNotFound = errors.New("booking not found")
)
