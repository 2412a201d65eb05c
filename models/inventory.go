package models

// Inventory is the persistent availability counter for one bookable resource
// bucket. UnitsAvailable is never negative: every decrement is guarded by a
// conditional update that only matches while enough units remain.
//
// For every key the invariant
//
//	UnitsAvailable + Σ quantity(active bookings) == nominal capacity
//
// holds after each successful reservation or cancellation when the store runs
// in transactional mode. In fallback mode the invariant is best-effort.
type Inventory struct {
	// ResourceKey identifies the bucket (resource id + class + optional dates).
	ResourceKey ResourceKey `json:"resource_key" bson:"resource_key"`

	// UnitsAvailable is the number of units still free to book.
	UnitsAvailable int `json:"units_available" bson:"units_available"`
}
