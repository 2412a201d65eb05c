// Package reservation implements the reservation transaction core shared by
// the flights and hotels services: converting available inventory units into
// booking records and reversing the conversion on cancellation.
//
// The manager runs each operation inside one storage transaction when the
// backend supports multi-record transactions, and degrades to independent
// best-effort operations when it does not. Capability is probed once per
// manager (one manager per store connection) and cached.
package reservation

//go:generate mockgen -source=interfaces.go -destination=../mock/reservation_mock.go -package=mock

import (
	"context"

	"github.com/statravel/sta/models"
)

// InventoryLedger performs conditional arithmetic over inventory records.
// Both conditional operations map to a single atomic store operation — there
// is no read-then-write window. In atomic mode the operations additionally
// join the surrounding transaction scope carried by ctx.
type InventoryLedger interface {
	// TryDecrement subtracts qty units from the record identified by key,
	// but only while the current value is strictly greater than threshold.
	// The boolean result distinguishes "no matching record" (a conflict,
	// not an error) from a store failure.
	TryDecrement(ctx context.Context, key models.ResourceKey, qty, threshold int) (bool, error)

	// Increment unconditionally adds qty units back, compensating a
	// previous decrement on cancellation. A missing record is not an error.
	Increment(ctx context.Context, key models.ResourceKey, qty int) error

	// SeedIfMissing creates the inventory record with the given capacity
	// only if no record exists for key. Reports whether seeding occurred.
	SeedIfMissing(ctx context.Context, key models.ResourceKey, capacity int) (bool, error)
}

// BookingStore persists booking records. Pure persistence, no business
// logic; the manager owns all status transitions.
type BookingStore interface {
	// Insert stores a new booking and fills in its store-generated ID.
	Insert(ctx context.Context, booking *models.Booking) error

	// FindActiveByIDAndOwner returns the active booking with the given id
	// owned by ownerID, or ErrBookingNotFound.
	FindActiveByIDAndOwner(ctx context.Context, id, ownerID string) (models.Booking, error)

	// MarkCancelled flips an active booking to cancelled. The flip is
	// conditional on the current status so that a concurrent double cancel
	// matches at most once; a no-match is reported as ErrBookingNotFound.
	MarkCancelled(ctx context.Context, id string) error

	// ListByOwner returns the owner's bookings, optionally filtered by
	// status, newest first, with page/limit paging.
	ListByOwner(ctx context.Context, ownerID string, filter models.BookingFilter) ([]models.Booking, error)
}

// TxRunner abstracts the backend's optional multi-record transaction scope.
type TxRunner interface {
	// RunAtomic executes fn inside one transaction scope. The ctx passed to
	// fn carries the transaction handle; ledger and booking operations
	// invoked with it join the scope. Returning an error from fn aborts the
	// scope. RunAtomic returns ErrTransactionsUnsupported when the backend
	// signals that transactions are not available; every other error is
	// surfaced as-is.
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error

	// Probe opens and closes a no-op transaction scope once, classifying
	// the backend: nil means transactions work, ErrTransactionsUnsupported
	// means the backend lacks them, anything else is a generic failure that
	// must not be interpreted as "unsupported".
	Probe(ctx context.Context) error
}

// CapacityReader is the read-only catalog lookup used for lazy seeding:
// the nominal capacity of a resource bucket by its key.
type CapacityReader interface {
	Capacity(key models.ResourceKey) (int, bool)
}
