package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/models"
)

const testHotelsJSON = `[
  {
    "hotel_id": "h1",
    "name": "Grand Plaza",
    "address": {"city": "Rome", "country": "Italy"},
    "maxGuests": 4,
    "amenities": ["wifi", "pool"],
    "room_types": [
      {"type": "Deluxe", "rooms_total": 3, "price": {"amount": 220}}
    ]
  }
]`

func newHotelsServer(t *testing.T) (*httptest.Server, *memBackend) {
	t.Helper()

	backend := newMemBackend()
	hotels := newTestHotelCatalog(t, testHotelsJSON)
	manager := reservation.NewManager(backend, backend, backend, hotels, &seqRefs{}, logger.Nop())

	handler := NewHandler(Deps{
		Tokens:       &staticTokens{userID: 42},
		Reservations: manager,
		Hotels:       hotels,
	}, logger.Nop())

	server := httptest.NewServer(handler.InitHotelsRouter())
	t.Cleanup(server.Close)
	return server, backend
}

func TestHotelsRouter_Search(t *testing.T) {
	server, _ := newHotelsServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/hotels?city=rome&guests=3", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.HotelsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Hotels, 1)
	assert.Equal(t, "h1", body.Hotels[0].HotelID)
}

func TestHotelsRouter_Search_BadGuests(t *testing.T) {
	server, _ := newHotelsServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/hotels?guests=many", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHotelsRouter_BookHotel(t *testing.T) {
	server, backend := newHotelsServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/bookings", "token-123",
		`{"hotelId": "h1", "roomType": "Deluxe", "checkIn": "2025-07-10", "checkOut": "2025-07-12"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.Booking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&booking))
	assert.Equal(t, models.HotelResourceKey("h1", "Deluxe", "2025-07-10", "2025-07-12"), booking.ResourceKey)

	// seeded from the nominal room count of the type, not per date range
	key := models.HotelResourceKey("h1", "Deluxe", "2025-07-10", "2025-07-12")
	assert.Equal(t, 2, backend.units[key])
}

func TestHotelsRouter_BookHotel_BadDateRange(t *testing.T) {
	server, _ := newHotelsServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/bookings", "token-123",
		`{"hotelId": "h1", "roomType": "Deluxe", "checkIn": "2025-07-12", "checkOut": "2025-07-10"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHotelsRouter_BookHotel_UnknownRoomType(t *testing.T) {
	server, _ := newHotelsServer(t)

	// the hotel exists but the room type has no catalog capacity
	resp := doJSON(t, http.MethodPost, server.URL+"/bookings", "token-123",
		`{"hotelId": "h1", "roomType": "Suite", "checkIn": "2025-07-10", "checkOut": "2025-07-12"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
