package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
// The only transition is active → cancelled; cancelled is terminal.
type BookingStatus string

const (
	// BookingActive marks a live booking that holds one or more inventory units.
	BookingActive BookingStatus = "active"

	// BookingCancelled marks a booking whose inventory units have been
	// returned. A cancelled booking is never reactivated or deleted.
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents one reservation of inventory units by a user.
// It is created only by the reservation manager and mutated exactly once,
// when the booking is cancelled.
type Booking struct {
	// ID is the store-generated unique identifier of the booking.
	ID string `json:"id" bson:"_id,omitempty"`

	// OwnerID identifies the user who made the booking.
	OwnerID string `json:"owner_id" bson:"owner_id"`

	// ResourceKey references the inventory bucket the booking draws from.
	ResourceKey ResourceKey `json:"resource_key" bson:"resource_key"`

	// Quantity is the number of inventory units held. Always positive;
	// the booking endpoints currently issue quantity 1.
	Quantity int `json:"quantity" bson:"quantity"`

	// Status is the lifecycle state (active or cancelled).
	Status BookingStatus `json:"status" bson:"status"`

	// Ref is the opaque confirmation code (PNR for flights, booking
	// reference for hotels) handed to the user.
	Ref string `json:"ref" bson:"ref"`

	// CreatedAt is the booking creation timestamp.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// BookingFilter narrows a booking listing. A nil Status matches all statuses.
// Page is 1-based; Limit caps the page size.
type BookingFilter struct {
	Status *BookingStatus `json:"status,omitempty"`
	Page   int            `json:"page,omitempty"`
	Limit  int            `json:"limit,omitempty"`
}

// Normalize clamps paging values to sane defaults: page >= 1 and
// 1 <= limit <= 100, defaulting to 20.
func (f BookingFilter) Normalize() BookingFilter {
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
