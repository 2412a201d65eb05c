package service

import (
	"github.com/statravel/sta/internal/adapter"
	"github.com/statravel/sta/internal/config"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/store"
)

// Services bundles the relational-backed services. Reservation handling is
// not here: the flights and hotels transports talk to the reservation
// manager directly.
type Services struct {
	AuthService AuthService
	TripService TripService
}

func NewServices(repositories store.Repositories, cfg *config.StructuredConfig, verifier adapter.BookingVerifier, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.App, logger),
		TripService: NewTripService(repositories.TripRepository, verifier, logger),
	}
}
