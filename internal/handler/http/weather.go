package http

import (
	"net/http"

	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

// searchWeather returns the weather reports matching the query parameters.
// An empty result responds 404 so that callers can distinguish "no data for
// this place" from an empty-but-known forecast.
func (h *Handler) searchWeather(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	reports := h.deps.Weather.Search(models.WeatherFilters{
		IATA:    query.Get("iata"),
		City:    query.Get("city"),
		Country: query.Get("country"),
		Date:    query.Get("date"),
	})

	if len(reports) == 0 {
		utils.WriteError(w, "no weather data found", http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, models.WeatherResponse{Reports: reports}, http.StatusOK)
}
