package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/statravel/sta/internal/adapter"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/store"
	"github.com/statravel/sta/models"
)

// tripService is the concrete implementation of TripService. When a booking
// verifier is configured, every booking reference on an incoming trip plan is
// checked against the owning service before the plan is persisted; a nil
// verifier skips the check.
type tripService struct {
	tripRepository store.TripRepository
	verifier       adapter.BookingVerifier
	logger         *logger.Logger
}

// NewTripService constructs a TripService over the given repository.
// verifier may be nil.
func NewTripService(tripRepository store.TripRepository, verifier adapter.BookingVerifier, logger *logger.Logger) TripService {
	return &tripService{
		tripRepository: tripRepository,
		verifier:       verifier,
		logger:         logger,
	}
}

// CreateTrip validates and persists a new trip plan.
//
// Returns the persisted plan or:
//   - ErrInvalidDataProvided if the name is empty.
//   - ErrBookingRefRejected (wrapped) if a booking reference fails
//     verification.
func (s *tripService) CreateTrip(ctx context.Context, ownerID, bearerToken string, req models.CreateTripRequest) (models.TripPlan, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		log.Error().Str("owner_id", ownerID).Msg("trip plan without a name")
		return models.TripPlan{}, ErrInvalidDataProvided
	}

	if err := s.verifyBookingRefs(ctx, bearerToken, req); err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("booking reference verification failed")
		return models.TripPlan{}, err
	}

	trip, err := s.tripRepository.CreateTrip(ctx, models.TripPlan{
		OwnerID:          ownerID,
		Name:             name,
		FlightBookingIDs: req.FlightBookingIDs,
		HotelBookingIDs:  req.HotelBookingIDs,
	})
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("trip creation ended with error")
		return models.TripPlan{}, fmt.Errorf("trip creation ended with error: %w", err)
	}

	return trip, nil
}

// GetTrip returns the owner's trip by id.
func (s *tripService) GetTrip(ctx context.Context, tripID int64, ownerID string) (models.TripPlan, error) {
	return s.tripRepository.GetTrip(ctx, tripID, ownerID)
}

// ListTrips returns one page of the owner's trips. Paging values are
// clamped before hitting the store.
func (s *tripService) ListTrips(ctx context.Context, ownerID string, filter models.TripFilter) ([]models.TripPlan, error) {
	return s.tripRepository.ListTrips(ctx, ownerID, filter.Normalize())
}

// DeleteTrip soft-deletes the owner's trip.
func (s *tripService) DeleteTrip(ctx context.Context, tripID int64, ownerID string) error {
	return s.tripRepository.DeleteTrip(ctx, tripID, ownerID)
}

func (s *tripService) verifyBookingRefs(ctx context.Context, bearerToken string, req models.CreateTripRequest) error {
	if s.verifier == nil {
		return nil
	}

	for _, id := range req.FlightBookingIDs {
		if err := s.verifier.VerifyFlightBooking(ctx, bearerToken, id); err != nil {
			return fmt.Errorf("%w: flight booking %s: %w", ErrBookingRefRejected, id, err)
		}
	}
	for _, id := range req.HotelBookingIDs {
		if err := s.verifier.VerifyHotelBooking(ctx, bearerToken, id); err != nil {
			return fmt.Errorf("%w: hotel booking %s: %w", ErrBookingRefRejected, id, err)
		}
	}

	return nil
}
