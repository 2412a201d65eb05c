package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

// searchHotels returns the hotels matching the query parameters. Amenities
// may be passed several times; every listed amenity must be present.
func (h *Handler) searchHotels(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	var guests int
	if raw := query.Get("guests"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Error().Str("guests", raw).Msg("invalid guests query parameter")
			utils.WriteError(w, "invalid guests parameter", http.StatusBadRequest)
			return
		}
		guests = parsed
	}

	hotels := h.deps.Hotels.Search(models.HotelFilters{
		City:      query.Get("city"),
		Country:   query.Get("country"),
		Guests:    guests,
		Amenities: query["amenities"],
	})

	_, _ = utils.WriteJSON(w, models.HotelsResponse{Hotels: hotels}, http.StatusOK)
}

func (h *Handler) getHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "hotelID")

	hotel, ok := h.deps.Hotels.FindByID(hotelID)
	if !ok {
		utils.WriteError(w, "hotel not found", http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, hotel, http.StatusOK)
}
