package models

import "time"

// TripStatus is the lifecycle state of a trip plan. Trips are soft-deleted:
// a deleted trip stays in the database but is excluded from every query.
type TripStatus string

const (
	TripActive  TripStatus = "active"
	TripDeleted TripStatus = "deleted"
)

// TripPlan groups flight and hotel bookings under a user-visible name.
type TripPlan struct {
	// TripID is the server-assigned identifier.
	TripID int64 `json:"trip_id"`

	// OwnerID identifies the user the trip belongs to.
	OwnerID string `json:"owner_id"`

	// Name is the optional display name.
	Name string `json:"name"`

	// FlightBookingIDs and HotelBookingIDs reference booking records in the
	// flights and hotels services by their confirmation ids.
	FlightBookingIDs []string `json:"flight_booking_ids"`
	HotelBookingIDs  []string `json:"hotel_booking_ids"`

	Status    TripStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TripFilter narrows a trip listing; paging semantics match BookingFilter.
type TripFilter struct {
	Page  int
	Limit int
}

// Normalize clamps paging values: page >= 1, 1 <= limit <= 100, default 20.
func (f TripFilter) Normalize() TripFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	return f
}
