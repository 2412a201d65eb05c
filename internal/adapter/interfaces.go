// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 STA Travel

// Package adapter holds outbound REST clients for the sibling booking
// services. The trips service uses [BookingVerifier] to check that the
// booking references attached to a trip plan really belong to the caller
// before the plan is persisted.
//
// Error values defined in errors.go are mapped from HTTP status codes so
// that callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BookingVerifier checks booking references against the owning service.
// The caller's bearer token is forwarded, so a verifier can only see the
// caller's own bookings.
type BookingVerifier interface {
	// VerifyFlightBooking confirms that the flights service has an active
	// booking with this id for the token's owner.
	VerifyFlightBooking(ctx context.Context, bearerToken, bookingID string) error

	// VerifyHotelBooking confirms the same against the hotels service.
	VerifyHotelBooking(ctx context.Context, bearerToken, bookingID string) error
}
