package store

import (
	"context"

	"github.com/statravel/sta/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts for the auth service.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TripRepository persists trip plans for the trips service. Deletes are soft:
// the record is kept with status deleted and excluded from reads.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip models.TripPlan) (models.TripPlan, error)
	GetTrip(ctx context.Context, tripID int64, ownerID string) (models.TripPlan, error)
	ListTrips(ctx context.Context, ownerID string, filter models.TripFilter) ([]models.TripPlan, error)
	DeleteTrip(ctx context.Context, tripID int64, ownerID string) error
}

// Repositories bundles the relational repositories handed to the service layer.
type Repositories struct {
	UserRepository UserRepository
	TripRepository TripRepository
}
