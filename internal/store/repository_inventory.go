package store

import (
	"context"
	"fmt"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// inventoryRepository is the document-store implementation of
// [reservation.InventoryLedger]. Each inventory record is keyed by the
// resource key string and carries a single units_available counter; all
// mutations are single conditional updates, so each one is atomic on its own
// even outside a transaction scope.
type inventoryRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewInventoryRepository constructs an inventory ledger over the given
// document store connection.
func NewInventoryRepository(m *Mongo, logger *logger.Logger) reservation.InventoryLedger {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		collection: m.Database.Collection(inventoryCollection),
		logger:     logger,
	}
}

// TryDecrement atomically takes qty units when more than threshold remain.
// A missing record matches nothing and reports false, which triggers the
// caller's lazy seeding.
func (r *inventoryRepository) TryDecrement(ctx context.Context, key models.ResourceKey, qty, threshold int) (bool, error) {
	filter := bson.M{
		"_id":             string(key),
		"units_available": bson.M{"$gt": threshold},
	}
	update := bson.M{"$inc": bson.M{"units_available": -qty}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("conditional decrement failed: %w", err)
	}

	return result.MatchedCount == 1, nil
}

// Increment returns qty units to the record, compensating a cancelled
// booking. The record always exists by the time a booking can be cancelled.
func (r *inventoryRepository) Increment(ctx context.Context, key models.ResourceKey, qty int) error {
	filter := bson.M{"_id": string(key)}
	update := bson.M{"$inc": bson.M{"units_available": qty}}

	if _, err := r.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("compensating increment failed: %w", err)
	}

	return nil
}

// SeedIfMissing creates the record with the given capacity unless it already
// exists. $setOnInsert never touches an existing counter, so a lost seeding
// race is harmless.
func (r *inventoryRepository) SeedIfMissing(ctx context.Context, key models.ResourceKey, capacity int) (bool, error) {
	filter := bson.M{"_id": string(key)}
	update := bson.M{"$setOnInsert": bson.M{"units_available": capacity}}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// two concurrent upserts of the same key can race on _id
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("inventory seed failed: %w", err)
	}

	return result.UpsertedCount == 1, nil
}
