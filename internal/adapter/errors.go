package adapter

import "errors"

var (
	// ErrBookingRefNotFound is returned when the owning service reports no
	// active booking under the given id for the caller.
	ErrBookingRefNotFound = errors.New("booking reference not found")

	// ErrUnauthorized is returned when the owning service rejects the
	// forwarded bearer token.
	ErrUnauthorized = errors.New("booking service rejected credentials")

	// ErrServiceUnavailable is returned when the owning service cannot be
	// reached or answers with a server error.
	ErrServiceUnavailable = errors.New("booking service unavailable")
)
