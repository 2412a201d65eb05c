package models

// Flight is a catalog entry describing one scheduled flight and its fare
// classes. Catalog entries are read-only snapshots loaded from object
// storage; live seat counts are tracked by the inventory store, the
// SeatsLeft value here is the nominal capacity used to seed inventory.
type Flight struct {
	FlightID     string      `json:"flight_id"`
	Origin       Airport     `json:"origin"`
	Destination  Airport     `json:"destination"`
	DepartureUTC string      `json:"departure_utc"`
	DurationMin  int         `json:"duration_min"`
	ClassFares   []ClassFare `json:"class_fares"`
}

// Airport identifies an airport by its IATA code.
type Airport struct {
	IATA string `json:"iata"`
}

// ClassFare is one fare class on a flight: its name, nominal seat capacity
// and price.
type ClassFare struct {
	Class     string `json:"class"`
	SeatsLeft int    `json:"seats_left"`
	Price     Price  `json:"price"`
}

// Price is a monetary amount. Currency handling is out of scope; amounts are
// compared as plain numbers when sorting search results.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// CheapestFare returns the lowest fare amount across all classes.
// Returns 0 for a flight with no fares.
func (f Flight) CheapestFare() float64 {
	if len(f.ClassFares) == 0 {
		return 0
	}
	min := f.ClassFares[0].Price.Amount
	for _, cf := range f.ClassFares[1:] {
		if cf.Price.Amount < min {
			min = cf.Price.Amount
		}
	}
	return min
}

// FlightFilters are the supported flight search criteria. Empty fields are
// ignored.
type FlightFilters struct {
	// Origin and Destination match IATA codes case-insensitively.
	Origin      string
	Destination string

	// DepartureDate matches the calendar day prefix (YYYY-MM-DD) of
	// the departure timestamp.
	DepartureDate string

	// Class matches flights that have the given fare class with at least
	// one nominal seat.
	Class string
}
