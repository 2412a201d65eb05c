package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookingRepository is the document-store implementation of
// [reservation.BookingStore].
type bookingRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewBookingRepository constructs a booking store over the given document
// store connection.
func NewBookingRepository(m *Mongo, logger *logger.Logger) reservation.BookingStore {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		collection: m.Database.Collection(bookingsCollection),
		logger:     logger,
	}
}

// Insert persists the booking and fills in its store-assigned ID.
func (r *bookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("booking insert failed: %w", err)
	}

	return nil
}

// FindActiveByIDAndOwner fetches the owner's active booking. A missing,
// foreign or cancelled booking maps to [reservation.ErrBookingNotFound].
func (r *bookingRepository) FindActiveByIDAndOwner(ctx context.Context, id, ownerID string) (models.Booking, error) {
	filter := bson.M{
		"_id":      id,
		"owner_id": ownerID,
		"status":   models.BookingActive,
	}

	var booking models.Booking
	if err := r.collection.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, reservation.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("booking lookup failed: %w", err)
	}

	return booking, nil
}

// MarkCancelled flips an active booking to cancelled. The status condition in
// the filter makes the flip happen at most once; a lost race maps to
// [reservation.ErrBookingNotFound].
func (r *bookingRepository) MarkCancelled(ctx context.Context, id string) error {
	filter := bson.M{"_id": id, "status": models.BookingActive}
	update := bson.M{"$set": bson.M{"status": models.BookingCancelled}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("booking cancel failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return reservation.ErrBookingNotFound
	}

	return nil
}

// ListByOwner returns one page of the owner's bookings, newest first.
func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID string, filter models.BookingFilter) ([]models.Booking, error) {
	filter = filter.Normalize()

	query := bson.M{"owner_id": ownerID}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("booking list failed: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("booking list decode failed: %w", err)
	}

	return bookings, nil
}
