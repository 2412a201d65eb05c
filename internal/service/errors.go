package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrBookingRefRejected is returned when a booking reference attached
	// to a trip plan cannot be verified with the owning service.
	ErrBookingRefRejected = errors.New("booking reference rejected")
)
