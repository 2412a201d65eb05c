package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/models"
)

// FlightCatalog holds the flight catalogue snapshot. It doubles as the
// capacity source for the reservation manager: each fare class's nominal
// seat count seeds the inventory record on first booking.
type FlightCatalog struct {
	loader   Loader
	logger   *logger.Logger
	snapshot atomic.Pointer[flightSnapshot]
}

type flightSnapshot struct {
	flights  []models.Flight
	capacity map[models.ResourceKey]int
}

func NewFlightCatalog(loader Loader, log *logger.Logger) *FlightCatalog {
	c := &FlightCatalog{loader: loader, logger: log}
	c.snapshot.Store(&flightSnapshot{capacity: map[models.ResourceKey]int{}})
	return c
}

// Reload fetches and parses the catalogue object and swaps in the new
// snapshot. On error the previous snapshot stays live.
func (c *FlightCatalog) Reload(ctx context.Context) error {
	data, err := c.loader.Load(ctx)
	if err != nil {
		return err
	}

	var flights []models.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return fmt.Errorf("malformed flight catalogue: %w", err)
	}

	capacity := make(map[models.ResourceKey]int)
	for _, flight := range flights {
		for _, fare := range flight.ClassFares {
			capacity[models.FlightResourceKey(flight.FlightID, fare.Class)] = fare.SeatsLeft
		}
	}

	c.snapshot.Store(&flightSnapshot{flights: flights, capacity: capacity})
	c.logger.Info().Int("flights", len(flights)).Msg("flight catalogue loaded")
	return nil
}

// Search filters the catalogue and sorts results by cheapest fare, then by
// duration.
func (c *FlightCatalog) Search(filters models.FlightFilters) []models.Flight {
	snap := c.snapshot.Load()

	var results []models.Flight
	for _, flight := range snap.flights {
		if !matchFlight(flight, filters) {
			continue
		}
		results = append(results, flight)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].CheapestFare(), results[j].CheapestFare()
		if a != b {
			return a < b
		}
		return results[i].DurationMin < results[j].DurationMin
	})

	return results
}

// FindByID returns the catalogue entry for the given flight id.
func (c *FlightCatalog) FindByID(id string) (models.Flight, bool) {
	for _, flight := range c.snapshot.Load().flights {
		if flight.FlightID == id {
			return flight, true
		}
	}
	return models.Flight{}, false
}

// Capacity implements [reservation.CapacityReader] for flight fare classes.
func (c *FlightCatalog) Capacity(key models.ResourceKey) (int, bool) {
	capacity, ok := c.snapshot.Load().capacity[key]
	return capacity, ok
}

func matchFlight(flight models.Flight, filters models.FlightFilters) bool {
	if filters.Origin != "" && !strings.EqualFold(flight.Origin.IATA, filters.Origin) {
		return false
	}
	if filters.Destination != "" && !strings.EqualFold(flight.Destination.IATA, filters.Destination) {
		return false
	}
	if filters.DepartureDate != "" && !strings.HasPrefix(flight.DepartureUTC, filters.DepartureDate) {
		return false
	}
	if filters.Class != "" {
		hasClass := false
		for _, fare := range flight.ClassFares {
			if fare.Class == filters.Class && fare.SeatsLeft > 0 {
				hasClass = true
				break
			}
		}
		if !hasClass {
			return false
		}
	}
	return true
}
