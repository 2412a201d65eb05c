package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/models"
)

// tripRepository is the PostgreSQL-backed implementation of [TripRepository].
// Booking ID lists are stored as JSONB arrays; deletes flip status to
// "deleted" so cancelled plans stay auditable.
type tripRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTripRepository constructs a [TripRepository] backed by the provided
// database connection and logger.
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTrip persists a new trip plan and returns it with server-assigned
// fields (TripID, Status, timestamps).
func (r *tripRepository) CreateTrip(ctx context.Context, trip models.TripPlan) (models.TripPlan, error) {
	log := logger.FromContext(ctx)

	flightIDs, err := json.Marshal(trip.FlightBookingIDs)
	if err != nil {
		return models.TripPlan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	hotelIDs, err := json.Marshal(trip.HotelBookingIDs)
	if err != nil {
		return models.TripPlan{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createTrip, trip.OwnerID, trip.Name, flightIDs, hotelIDs)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("error: row is nil")
		return models.TripPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanTrip(row)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("error: scanning error")
		return models.TripPlan{}, err
	}

	return created, nil
}

// GetTrip retrieves the owner's active trip by id. Deleted or foreign trips
// map to [ErrTripNotFound].
func (r *tripRepository) GetTrip(ctx context.Context, tripID int64, ownerID string) (models.TripPlan, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getTrip, tripID, ownerID)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripPlan{}, ErrTripNotFound
		}
		log.Err(err).Str("func", "*tripRepository.GetTrip").Msg("error: row is nil")
		return models.TripPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripPlan{}, ErrTripNotFound
		}
		log.Err(err).Str("func", "*tripRepository.GetTrip").Msg("error: scanning error")
		return models.TripPlan{}, err
	}

	return trip, nil
}

// ListTrips returns one page of the owner's active trips, newest first.
func (r *tripRepository) ListTrips(ctx context.Context, ownerID string, filter models.TripFilter) ([]models.TripPlan, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	query, args, err := sq.
		Select("trip_id", "owner_id", "name", "flight_booking_ids", "hotel_booking_ids", "status", "created_at", "updated_at").
		From("trips").
		Where(sq.Eq{"owner_id": ownerID, "status": "active"}).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var trips []models.TripPlan
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("error scanning trip row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trips, nil
}

// DeleteTrip soft-deletes the owner's active trip. Zero affected rows means
// the trip does not exist, belongs to someone else or was already deleted.
func (r *tripRepository) DeleteTrip(ctx context.Context, tripID int64, ownerID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTrip, tripID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.DeleteTrip").Msg("error executing soft delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTripNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.TripPlan, error) {
	var (
		trip      models.TripPlan
		flightIDs []byte
		hotelIDs  []byte
	)

	err := row.Scan(&trip.TripID, &trip.OwnerID, &trip.Name, &flightIDs, &hotelIDs, &trip.Status, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return models.TripPlan{}, err
	}

	if err := json.Unmarshal(flightIDs, &trip.FlightBookingIDs); err != nil {
		return models.TripPlan{}, fmt.Errorf("malformed flight booking ids: %w", err)
	}
	if err := json.Unmarshal(hotelIDs, &trip.HotelBookingIDs); err != nil {
		return models.TripPlan{}, fmt.Errorf("malformed hotel booking ids: %w", err)
	}

	return trip, nil
}
