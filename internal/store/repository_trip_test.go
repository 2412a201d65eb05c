package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/models"
)

func newTestTripRepo(t *testing.T) (*tripRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &tripRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func tripColumns() []string {
	return []string{"trip_id", "owner_id", "name", "flight_booking_ids", "hotel_booking_ids", "status", "created_at", "updated_at"}
}

func TestCreateTrip_Success(t *testing.T) {
	repo, mock, db := newTestTripRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(tripColumns()).
		AddRow(1, "10", "Summer in Rome", []byte(`["bk-0001"]`), []byte(`["bk-0002"]`), "active", now, now)

	mock.ExpectQuery("INSERT INTO trips").
		WithArgs("10", "Summer in Rome", []byte(`["bk-0001"]`), []byte(`["bk-0002"]`)).
		WillReturnRows(rows)

	created, err := repo.CreateTrip(context.Background(), models.TripPlan{
		OwnerID:          "10",
		Name:             "Summer in Rome",
		FlightBookingIDs: []string{"bk-0001"},
		HotelBookingIDs:  []string{"bk-0002"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TripID != 1 {
		t.Errorf("expected TripID=1, got %d", created.TripID)
	}
	if len(created.FlightBookingIDs) != 1 || created.FlightBookingIDs[0] != "bk-0001" {
		t.Errorf("unexpected flight booking ids: %v", created.FlightBookingIDs)
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	repo, mock, db := newTestTripRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs(int64(9), "10").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTrip(context.Background(), 9, "10")
	if !errors.Is(err, ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
}

func TestListTrips_Paginates(t *testing.T) {
	repo, mock, db := newTestTripRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(tripColumns()).
		AddRow(2, "10", "Winter in Oslo", []byte(`[]`), []byte(`[]`), "active", now, now).
		AddRow(1, "10", "Summer in Rome", []byte(`["bk-0001"]`), []byte(`[]`), "active", now, now)

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("10", "active").
		WillReturnRows(rows)

	trips, err := repo.ListTrips(context.Background(), "10", models.TripFilter{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	if trips[0].Name != "Winter in Oslo" {
		t.Errorf("expected newest trip first, got %s", trips[0].Name)
	}
}

func TestDeleteTrip_Success(t *testing.T) {
	repo, mock, db := newTestTripRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE trips").
		WithArgs(int64(1), "10").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTrip(context.Background(), 1, "10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTrip_AlreadyDeleted(t *testing.T) {
	repo, mock, db := newTestTripRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE trips").
		WithArgs(int64(1), "10").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTrip(context.Background(), 1, "10")
	if !errors.Is(err, ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
}
