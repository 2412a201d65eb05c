package reservation

import "errors"

// Sentinel errors returned by the reservation manager. Callers should use
// [errors.Is] to match against these values; no raw store error crosses the
// manager boundary without being wrapped in one of them.
var (
	// ErrInsufficientInventory is returned when the conditional decrement
	// finds no inventory record with enough units, even after a lazy seed
	// attempt. The condition is terminal for the call: it is never retried.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrBookingNotFound is returned by cancellation when the booking does
	// not exist, is owned by a different user, or is already cancelled.
	// A repeated cancel of the same booking always yields this error and
	// never a second compensating increment.
	ErrBookingNotFound = errors.New("booking not found or already cancelled")

	// ErrInvalidRequest is returned when a reservation call carries an
	// empty owner, an empty resource key or a non-positive quantity.
	ErrInvalidRequest = errors.New("invalid reservation request")

	// ErrRetriesExhausted is returned after the attempt cap is reached with
	// no terminal success or conflict. It wraps the last transient error.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// ErrTransactionsUnsupported is the internal downgrade signal: the backend
// reported that multi-record transactions are not available (for MongoDB a
// standalone deployment, server error code 20). It is never surfaced to a
// caller; the manager switches to the fallback path and re-runs the current
// attempt.
var ErrTransactionsUnsupported = errors.New("transactions not supported by the storage backend")
