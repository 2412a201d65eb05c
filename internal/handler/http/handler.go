package http

import (
	"github.com/statravel/sta/internal/catalog"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/internal/service"
)

// Deps carries the dependencies a Handler may need. Each service binary
// fills only the fields its routes use; the matching Init*Router method
// ignores the rest.
type Deps struct {
	// Tokens validates bearer tokens on protected routes. Required by
	// every router except weather.
	Tokens service.TokenParser

	// Services holds the relational-backed services (auth, trips).
	Services *service.Services

	// Reservations is the booking engine shared by the flights and hotels
	// transports.
	Reservations *reservation.Manager

	Flights *catalog.FlightCatalog
	Hotels  *catalog.HotelCatalog
	Weather *catalog.WeatherCatalog
}

type Handler struct {
	deps Deps

	logger *logger.Logger
}

func NewHandler(deps Deps, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		deps:   deps,
		logger: logger,
	}
}
