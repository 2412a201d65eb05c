package models

// Request payloads accepted by the HTTP layer. Validation beyond simple
// presence checks happens in the service layer.

// BookFlightRequest reserves one seat in the given fare class.
type BookFlightRequest struct {
	FlightID string `json:"flightId"`
	Class    string `json:"class"`
}

// BookHotelRequest reserves one room of the given type for a date range.
type BookHotelRequest struct {
	HotelID  string `json:"hotelId"`
	RoomType string `json:"roomType"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTripRequest groups existing booking references into a trip plan.
type CreateTripRequest struct {
	Name             string   `json:"name"`
	FlightBookingIDs []string `json:"flightBookingIds"`
	HotelBookingIDs  []string `json:"hotelBookingIds"`
}
