package reservation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/models"
)

const (
	// maxAttempts caps the number of tries per logical call. Conflicts and
	// not-found conditions are terminal and never consume retries.
	maxAttempts = 3

	// retryDelay is the constant pause between attempts. Short and bounded;
	// the backend client owns real timeout behavior.
	retryDelay = 25 * time.Millisecond
)

// Execution mode of the manager, resolved once per store connection.
const (
	modeUnknown int32 = iota
	modeAtomic
	modeFallback
)

// RefSource produces opaque booking confirmation codes.
type RefSource interface {
	Generate() string
}

// Manager orchestrates reservations: capability detection, retries,
// atomic or fallback execution, and lazy inventory seeding. It is the only
// type the transport layer talks to.
//
// One Manager serves one store connection. All state except the cached
// execution mode is read-only after construction, so a Manager is safe for
// concurrent use; mutual exclusion between concurrent reservations is
// delegated entirely to the storage backend.
type Manager struct {
	ledger   InventoryLedger
	bookings BookingStore
	tx       TxRunner
	catalog  CapacityReader
	refs     RefSource
	logger   *logger.Logger

	// mode caches the transaction capability of the backend. Probed on
	// first use, downgraded in place when the backend rejects a live
	// transaction, never re-probed afterwards.
	mode atomic.Int32
}

// NewManager wires a reservation manager over the given ports.
func NewManager(ledger InventoryLedger, bookings BookingStore, tx TxRunner, catalog CapacityReader, refs RefSource, log *logger.Logger) *Manager {
	return &Manager{
		ledger:   ledger,
		bookings: bookings,
		tx:       tx,
		catalog:  catalog,
		refs:     refs,
		logger:   log,
	}
}

// CreateReservation converts one inventory unit (or qty units) into an
// active booking owned by ownerID.
//
// The decrement, the lazy seed and the booking insert run inside a single
// transaction scope when the backend supports one, and as independent
// operations otherwise. Transient store failures are retried up to the
// attempt cap; ErrInsufficientInventory is terminal.
//
// In fallback mode a failure between the decrement and the insert leaves the
// decrement in place with no booking. No compensation is attempted; this is
// a documented limitation of fallback mode.
func (m *Manager) CreateReservation(ctx context.Context, ownerID string, key models.ResourceKey, qty int) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" || key == "" {
		return models.Booking{}, ErrInvalidRequest
	}
	if qty < 1 {
		return models.Booking{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidRequest)
	}

	var booking models.Booking

	err := retry.Do(ctx, m.backoff(), func(ctx context.Context) error {
		if err := m.resolveMode(ctx); err != nil {
			return retry.RetryableError(err)
		}

		created, err := m.createOnce(ctx, ownerID, key, qty)
		if err != nil {
			if errors.Is(err, ErrInsufficientInventory) {
				return err
			}
			log.Warn().
				Err(err).
				Str("resource_key", key.String()).
				Msg("reservation attempt failed, will retry")
			return retry.RetryableError(err)
		}

		booking = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientInventory) {
			return models.Booking{}, err
		}
		log.Err(err).
			Str("owner_id", ownerID).
			Str("resource_key", key.String()).
			Msg("reservation failed after all attempts")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
	}

	return booking, nil
}

// CancelReservation flips the caller's active booking to cancelled and
// returns the held units to inventory. Cancelling an absent, foreign or
// already-cancelled booking yields ErrBookingNotFound and never issues a
// second compensating increment.
func (m *Manager) CancelReservation(ctx context.Context, ownerID, bookingID string) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" || bookingID == "" {
		return models.Booking{}, ErrInvalidRequest
	}

	var cancelled models.Booking

	err := retry.Do(ctx, m.backoff(), func(ctx context.Context) error {
		if err := m.resolveMode(ctx); err != nil {
			return retry.RetryableError(err)
		}

		booking, err := m.cancelOnce(ctx, ownerID, bookingID)
		if err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				return err
			}
			log.Warn().
				Err(err).
				Str("booking_id", bookingID).
				Msg("cancellation attempt failed, will retry")
			return retry.RetryableError(err)
		}

		cancelled = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return models.Booking{}, err
		}
		log.Err(err).
			Str("owner_id", ownerID).
			Str("booking_id", bookingID).
			Msg("cancellation failed after all attempts")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
	}

	return cancelled, nil
}

// GetBooking returns the owner's active booking by id. Used by the booking
// detail endpoint and by sibling services verifying booking references.
func (m *Manager) GetBooking(ctx context.Context, ownerID, bookingID string) (models.Booking, error) {
	if ownerID == "" || bookingID == "" {
		return models.Booking{}, ErrInvalidRequest
	}
	return m.bookings.FindActiveByIDAndOwner(ctx, bookingID, ownerID)
}

// ListBookings returns the owner's bookings. Pure pass-through to the
// booking store, included so that the transport layer has a single
// collaborator for all booking operations.
func (m *Manager) ListBookings(ctx context.Context, ownerID string, filter models.BookingFilter) ([]models.Booking, error) {
	if ownerID == "" {
		return nil, ErrInvalidRequest
	}
	return m.bookings.ListByOwner(ctx, ownerID, filter.Normalize())
}

func (m *Manager) backoff() retry.Backoff {
	return retry.WithMaxRetries(maxAttempts-1, retry.NewConstant(retryDelay))
}

// resolveMode probes the backend's transaction capability once and caches
// the answer for the lifetime of the manager. A generic probe failure is
// surfaced (and retried by the caller) rather than interpreted as
// "unsupported".
func (m *Manager) resolveMode(ctx context.Context) error {
	if m.mode.Load() != modeUnknown {
		return nil
	}

	err := m.tx.Probe(ctx)
	switch {
	case err == nil:
		m.mode.CompareAndSwap(modeUnknown, modeAtomic)
	case errors.Is(err, ErrTransactionsUnsupported):
		logger.FromContext(ctx).Info().
			Msg("storage backend has no transaction support, using fallback mode")
		m.mode.CompareAndSwap(modeUnknown, modeFallback)
	default:
		return err
	}

	return nil
}

// downgrade switches the manager to fallback mode after a live transaction
// was rejected mid-flight.
func (m *Manager) downgrade(ctx context.Context) {
	logger.FromContext(ctx).Warn().
		Msg("transaction rejected by storage backend, downgrading to fallback mode")
	m.mode.Store(modeFallback)
}

// createOnce runs a single reservation attempt. When the backend rejects the
// transaction scope with the unsupported signal the attempt is re-run on the
// fallback path immediately — the downgrade does not consume a retry.
func (m *Manager) createOnce(ctx context.Context, ownerID string, key models.ResourceKey, qty int) (models.Booking, error) {
	if m.mode.Load() == modeAtomic {
		var booking models.Booking
		err := m.tx.RunAtomic(ctx, func(txCtx context.Context) error {
			created, reserveErr := m.reserve(txCtx, ownerID, key, qty)
			if reserveErr != nil {
				return reserveErr
			}
			booking = created
			return nil
		})
		if !errors.Is(err, ErrTransactionsUnsupported) {
			return booking, err
		}
		m.downgrade(ctx)
	}

	return m.reserve(ctx, ownerID, key, qty)
}

// reserve performs decrement → (seed-if-missing → one decrement retry) →
// insert. With a transaction-scoped ctx all three operations commit or abort
// together; with a plain ctx they are independent best-effort operations.
func (m *Manager) reserve(ctx context.Context, ownerID string, key models.ResourceKey, qty int) (models.Booking, error) {
	// threshold qty-1 keeps unitsAvailable from ever going negative
	ok, err := m.ledger.TryDecrement(ctx, key, qty, qty-1)
	if err != nil {
		return models.Booking{}, err
	}

	if !ok {
		ok, err = m.seedAndRetry(ctx, key, qty)
		if err != nil {
			return models.Booking{}, err
		}
		if !ok {
			return models.Booking{}, ErrInsufficientInventory
		}
	}

	booking := models.Booking{
		OwnerID:     ownerID,
		ResourceKey: key,
		Quantity:    qty,
		Status:      models.BookingActive,
		Ref:         m.refs.Generate(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := m.bookings.Insert(ctx, &booking); err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

// seedAndRetry lazily creates the inventory record from the catalog's
// nominal capacity and retries the decrement once. An unknown key cannot be
// seeded and reports no match.
func (m *Manager) seedAndRetry(ctx context.Context, key models.ResourceKey, qty int) (bool, error) {
	capacity, found := m.catalog.Capacity(key)
	if !found {
		return false, nil
	}

	seeded, err := m.ledger.SeedIfMissing(ctx, key, capacity)
	if err != nil {
		return false, err
	}
	if seeded {
		logger.FromContext(ctx).Info().
			Str("resource_key", key.String()).
			Int("capacity", capacity).
			Msg("seeded inventory from catalog")
	}

	return m.ledger.TryDecrement(ctx, key, qty, qty-1)
}

// cancelOnce runs a single cancellation attempt with the same
// downgrade-and-continue behavior as createOnce.
func (m *Manager) cancelOnce(ctx context.Context, ownerID, bookingID string) (models.Booking, error) {
	if m.mode.Load() == modeAtomic {
		var booking models.Booking
		err := m.tx.RunAtomic(ctx, func(txCtx context.Context) error {
			cancelled, cancelErr := m.release(txCtx, ownerID, bookingID)
			if cancelErr != nil {
				return cancelErr
			}
			booking = cancelled
			return nil
		})
		if !errors.Is(err, ErrTransactionsUnsupported) {
			return booking, err
		}
		m.downgrade(ctx)
	}

	return m.release(ctx, ownerID, bookingID)
}

// release marks the booking cancelled and performs the compensating
// increment. MarkCancelled only matches an active booking, so a concurrent
// double cancel increments inventory at most once even in fallback mode.
func (m *Manager) release(ctx context.Context, ownerID, bookingID string) (models.Booking, error) {
	booking, err := m.bookings.FindActiveByIDAndOwner(ctx, bookingID, ownerID)
	if err != nil {
		return models.Booking{}, err
	}

	if err := m.bookings.MarkCancelled(ctx, booking.ID); err != nil {
		return models.Booking{}, err
	}

	if err := m.ledger.Increment(ctx, booking.ResourceKey, booking.Quantity); err != nil {
		return models.Booking{}, err
	}

	booking.Status = models.BookingCancelled
	return booking, nil
}
