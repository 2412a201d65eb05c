package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

// searchFlights returns the flights matching the query parameters. An empty
// query returns the whole catalog.
func (h *Handler) searchFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	flights := h.deps.Flights.Search(models.FlightFilters{
		Origin:        query.Get("origin"),
		Destination:   query.Get("destination"),
		DepartureDate: query.Get("departureDate"),
		Class:         query.Get("class"),
	})

	_, _ = utils.WriteJSON(w, models.FlightsResponse{Flights: flights}, http.StatusOK)
}

func (h *Handler) getFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightID")

	flight, ok := h.deps.Flights.FindByID(flightID)
	if !ok {
		utils.WriteError(w, "flight not found", http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, flight, http.StatusOK)
}
