package service

import (
	"context"

	"github.com/statravel/sta/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TripService manages trip plans: named groupings of flight and hotel
// booking references owned by one user.
type TripService interface {
	CreateTrip(ctx context.Context, ownerID, bearerToken string, req models.CreateTripRequest) (models.TripPlan, error)
	GetTrip(ctx context.Context, tripID int64, ownerID string) (models.TripPlan, error)
	ListTrips(ctx context.Context, ownerID string, filter models.TripFilter) ([]models.TripPlan, error)
	DeleteTrip(ctx context.Context, tripID int64, ownerID string) error
}
