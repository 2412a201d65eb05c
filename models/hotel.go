package models

// Hotel is a catalog entry describing a property and its room types.
// Loaded from object storage at startup, never mutated in place.
type Hotel struct {
	HotelID   string     `json:"hotel_id"`
	Name      string     `json:"name"`
	Address   Address    `json:"address"`
	MaxGuests int        `json:"maxGuests"`
	Amenities []string   `json:"amenities"`
	RoomTypes []RoomType `json:"room_types"`
}

// Address locates a hotel.
type Address struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// RoomType is one bookable room category with its nominal room count,
// used to seed inventory on first reservation.
type RoomType struct {
	Type       string `json:"type"`
	RoomsTotal int    `json:"rooms_total"`
	Price      Price  `json:"price"`
}

// HotelFilters are the supported hotel search criteria. Empty fields are
// ignored; Amenities requires every listed amenity to be present.
type HotelFilters struct {
	City      string
	Country   string
	Guests    int
	Amenities []string
}
