package models

// WeatherReport is one daily weather snapshot for a location, served from
// the read-only weather catalog.
type WeatherReport struct {
	Location   Location `json:"location"`
	Date       string   `json:"date"`
	Condition  string   `json:"condition"`
	TempMinC   float64  `json:"temp_min_c"`
	TempMaxC   float64  `json:"temp_max_c"`
	Humidity   int      `json:"humidity"`
	WindKmh    float64  `json:"wind_kmh"`
	PrecipProb int      `json:"precip_prob"`
}

// Location identifies where a weather snapshot was taken.
type Location struct {
	IATA    string `json:"iata"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// WeatherFilters are the supported weather search criteria; string matches
// are case-insensitive, Date matches exactly (YYYY-MM-DD).
type WeatherFilters struct {
	IATA    string
	City    string
	Country string
	Date    string
}
