package store

import (
	"context"
	"fmt"

	"github.com/statravel/sta/internal/config"
	"github.com/statravel/sta/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	bookingsCollection  = "bookings"
	inventoryCollection = "inventory"
)

// Mongo wraps the document-store connection used by the flights and hotels
// services for bookings and inventory.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during document store connection")
		return nil, fmt.Errorf("error occured during document store connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting document store (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to document store successfully")

	return &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
