package models

import "strings"

// ResourceKey identifies a single bookable inventory bucket. It is a composite
// key: the resource identifier plus the fare or room class, plus an optional
// date range for date-scoped inventory (hotel rooms). Parts are joined with
// "|", e.g. "flight-1|Economy" or "h1|Deluxe|2025-07-10:2025-07-12".
//
// The key is stored verbatim in both inventory and booking records, and is
// the lookup key for nominal capacity in the catalog.
type ResourceKey string

const resourceKeySep = "|"

// FlightResourceKey builds the inventory key for a flight fare class.
func FlightResourceKey(flightID, fareClass string) ResourceKey {
	return ResourceKey(flightID + resourceKeySep + fareClass)
}

// HotelResourceKey builds the inventory key for a hotel room type. When both
// checkIn and checkOut are non-empty the key is scoped to that date range.
func HotelResourceKey(hotelID, roomType, checkIn, checkOut string) ResourceKey {
	key := hotelID + resourceKeySep + roomType
	if checkIn != "" && checkOut != "" {
		key += resourceKeySep + checkIn + ":" + checkOut
	}
	return ResourceKey(key)
}

// Parts splits the key back into its components.
func (k ResourceKey) Parts() []string {
	return strings.Split(string(k), resourceKeySep)
}

// ResourceID returns the first component of the key (flight or hotel id).
func (k ResourceKey) ResourceID() string {
	parts := k.Parts()
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func (k ResourceKey) String() string {
	return string(k)
}
