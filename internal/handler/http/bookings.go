package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

// Booking endpoints issue quantity 1: one seat per flight booking, one room
// per hotel booking.
const bookedUnits = 1

func (h *Handler) bookFlight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BookFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.FlightID == "" || req.Class == "" {
		utils.WriteError(w, "flightId and class are required", http.StatusBadRequest)
		return
	}

	if _, found := h.deps.Flights.FindByID(req.FlightID); !found {
		utils.WriteError(w, "flight not found", http.StatusNotFound)
		return
	}

	key := models.FlightResourceKey(req.FlightID, req.Class)
	booking, err := h.deps.Reservations.CreateReservation(ctx, ownerID, key, bookedUnits)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Str("resource_key", key.String()).Msg("flight booking failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, booking, http.StatusCreated)
}

func (h *Handler) bookHotel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BookHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.HotelID == "" || req.RoomType == "" || req.CheckIn == "" || req.CheckOut == "" {
		utils.WriteError(w, "hotelId, roomType, checkIn and checkOut are required", http.StatusBadRequest)
		return
	}
	if req.CheckOut <= req.CheckIn {
		utils.WriteError(w, "checkOut must be after checkIn", http.StatusBadRequest)
		return
	}

	if _, found := h.deps.Hotels.FindByID(req.HotelID); !found {
		utils.WriteError(w, "hotel not found", http.StatusNotFound)
		return
	}

	key := models.HotelResourceKey(req.HotelID, req.RoomType, req.CheckIn, req.CheckOut)
	booking, err := h.deps.Reservations.CreateReservation(ctx, ownerID, key, bookedUnits)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Str("resource_key", key.String()).Msg("hotel booking failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, booking, http.StatusCreated)
}

// listBookings returns one page of the caller's bookings, newest first.
func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := bookingFilterFromQuery(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	bookings, err := h.deps.Reservations.ListBookings(ctx, ownerID, filter)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("booking listing failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.BookingsResponse{Bookings: bookings}, http.StatusOK)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	booking, err := h.deps.Reservations.GetBooking(ctx, ownerID, bookingID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Str("booking_id", bookingID).Msg("booking lookup failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, booking, http.StatusOK)
}

// cancelBooking releases the booking's inventory units and responds 204.
// Cancelling an already cancelled or foreign booking responds 404.
func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if _, err := h.deps.Reservations.CancelReservation(ctx, ownerID, bookingID); err != nil {
		log.Err(err).Str("owner_id", ownerID).Str("booking_id", bookingID).Msg("booking cancellation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func bookingFilterFromQuery(r *http.Request) (models.BookingFilter, error) {
	query := r.URL.Query()

	var filter models.BookingFilter
	if raw := query.Get("status"); raw != "" {
		status := models.BookingStatus(raw)
		if status != models.BookingActive && status != models.BookingCancelled {
			return models.BookingFilter{}, ErrUnknownBookingStatus
		}
		filter.Status = &status
	}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.BookingFilter{}, ErrInvalidPagingParams
		}
		filter.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.BookingFilter{}, ErrInvalidPagingParams
		}
		filter.Limit = limit
	}

	return filter, nil
}
