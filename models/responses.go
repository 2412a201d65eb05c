package models

// Response envelopes returned by the HTTP layer.

// ErrorResponse is the uniform error body for all services.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FlightsResponse wraps flight search results.
type FlightsResponse struct {
	Flights []Flight `json:"flights"`
}

// HotelsResponse wraps hotel search results.
type HotelsResponse struct {
	Hotels []Hotel `json:"hotels"`
}

// BookingsResponse wraps a booking listing.
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// TripResponse wraps a single trip plan.
type TripResponse struct {
	Data TripPlan `json:"data"`
}

// TripsResponse wraps a trip listing.
type TripsResponse struct {
	Data []TripPlan `json:"data"`
}

// AuthResponse is returned by register and login. User is only populated on
// registration.
type AuthResponse struct {
	User      *User  `json:"user,omitempty"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// MeResponse wraps the authenticated user's profile.
type MeResponse struct {
	User User `json:"user"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// WeatherResponse wraps weather lookup results.
type WeatherResponse struct {
	Reports []WeatherReport `json:"reports"`
}
