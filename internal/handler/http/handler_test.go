package http

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statravel/sta/internal/catalog"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/models"
)

// staticTokens accepts any token string and reports the configured user, or
// fails with the configured error.
type staticTokens struct {
	userID int64
	err    error
}

func (s *staticTokens) ParseToken(context.Context, string) (models.Token, error) {
	if s.err != nil {
		return models.Token{}, s.err
	}
	return models.Token{UserID: s.userID}, nil
}

type staticLoader struct {
	data []byte
}

func (l *staticLoader) Load(context.Context) ([]byte, error) {
	return l.data, nil
}

// memBackend is an in-memory reservation store without transaction support,
// driving the manager down its fallback path.
type memBackend struct {
	mu       sync.Mutex
	units    map[models.ResourceKey]int
	bookings map[string]models.Booking
	nextID   int
}

func newMemBackend() *memBackend {
	return &memBackend{
		units:    make(map[models.ResourceKey]int),
		bookings: make(map[string]models.Booking),
	}
}

func (b *memBackend) TryDecrement(_ context.Context, key models.ResourceKey, qty, threshold int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	units, ok := b.units[key]
	if !ok || units <= threshold {
		return false, nil
	}
	b.units[key] = units - qty
	return true, nil
}

func (b *memBackend) Increment(_ context.Context, key models.ResourceKey, qty int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.units[key] += qty
	return nil
}

func (b *memBackend) SeedIfMissing(_ context.Context, key models.ResourceKey, capacity int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.units[key]; ok {
		return false, nil
	}
	b.units[key] = capacity
	return true, nil
}

func (b *memBackend) Insert(_ context.Context, booking *models.Booking) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	booking.ID = fmt.Sprintf("bk-%04d", b.nextID)
	b.bookings[booking.ID] = *booking
	return nil
}

func (b *memBackend) FindActiveByIDAndOwner(_ context.Context, id, ownerID string) (models.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	booking, ok := b.bookings[id]
	if !ok || booking.OwnerID != ownerID || booking.Status != models.BookingActive {
		return models.Booking{}, reservation.ErrBookingNotFound
	}
	return booking, nil
}

func (b *memBackend) MarkCancelled(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	booking, ok := b.bookings[id]
	if !ok || booking.Status != models.BookingActive {
		return reservation.ErrBookingNotFound
	}
	booking.Status = models.BookingCancelled
	b.bookings[id] = booking
	return nil
}

func (b *memBackend) ListByOwner(_ context.Context, ownerID string, filter models.BookingFilter) ([]models.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []models.Booking
	for _, booking := range b.bookings {
		if booking.OwnerID != ownerID {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		out = append(out, booking)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (b *memBackend) RunAtomic(context.Context, func(ctx context.Context) error) error {
	return reservation.ErrTransactionsUnsupported
}

func (b *memBackend) Probe(context.Context) error {
	return reservation.ErrTransactionsUnsupported
}

type seqRefs struct {
	n int
}

func (r *seqRefs) Generate() string {
	r.n++
	return fmt.Sprintf("REF-%03d", r.n)
}

func newTestFlightCatalog(t *testing.T, data string) *catalog.FlightCatalog {
	t.Helper()
	c := catalog.NewFlightCatalog(&staticLoader{data: []byte(data)}, logger.Nop())
	require.NoError(t, c.Reload(context.Background()))
	return c
}

func newTestHotelCatalog(t *testing.T, data string) *catalog.HotelCatalog {
	t.Helper()
	c := catalog.NewHotelCatalog(&staticLoader{data: []byte(data)}, logger.Nop())
	require.NoError(t, c.Reload(context.Background()))
	return c
}

func newTestWeatherCatalog(t *testing.T, data string) *catalog.WeatherCatalog {
	t.Helper()
	c := catalog.NewWeatherCatalog(&staticLoader{data: []byte(data)}, logger.Nop())
	require.NoError(t, c.Reload(context.Background()))
	return c
}
