package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/models"
)

// HotelCatalog holds the hotel catalogue snapshot. Room capacity is keyed by
// hotel and room type only; the date range in a hotel resource key scopes the
// inventory bucket, not the nominal capacity, so every date range of the same
// room type seeds from the same room count.
type HotelCatalog struct {
	loader   Loader
	logger   *logger.Logger
	snapshot atomic.Pointer[hotelSnapshot]
}

type hotelSnapshot struct {
	hotels   []models.Hotel
	capacity map[models.ResourceKey]int
}

func NewHotelCatalog(loader Loader, log *logger.Logger) *HotelCatalog {
	c := &HotelCatalog{loader: loader, logger: log}
	c.snapshot.Store(&hotelSnapshot{capacity: map[models.ResourceKey]int{}})
	return c
}

// Reload fetches and parses the catalogue object and swaps in the new
// snapshot. On error the previous snapshot stays live.
func (c *HotelCatalog) Reload(ctx context.Context) error {
	data, err := c.loader.Load(ctx)
	if err != nil {
		return err
	}

	var hotels []models.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return fmt.Errorf("malformed hotel catalogue: %w", err)
	}

	capacity := make(map[models.ResourceKey]int)
	for _, hotel := range hotels {
		for _, room := range hotel.RoomTypes {
			capacity[models.HotelResourceKey(hotel.HotelID, room.Type, "", "")] = room.RoomsTotal
		}
	}

	c.snapshot.Store(&hotelSnapshot{hotels: hotels, capacity: capacity})
	c.logger.Info().Int("hotels", len(hotels)).Msg("hotel catalogue loaded")
	return nil
}

// Search filters the catalogue by city, country, guest count and amenities.
func (c *HotelCatalog) Search(filters models.HotelFilters) []models.Hotel {
	snap := c.snapshot.Load()

	var results []models.Hotel
	for _, hotel := range snap.hotels {
		if !matchHotel(hotel, filters) {
			continue
		}
		results = append(results, hotel)
	}

	return results
}

// FindByID returns the catalogue entry for the given hotel id.
func (c *HotelCatalog) FindByID(id string) (models.Hotel, bool) {
	for _, hotel := range c.snapshot.Load().hotels {
		if hotel.HotelID == id {
			return hotel, true
		}
	}
	return models.Hotel{}, false
}

// Capacity implements [reservation.CapacityReader] for hotel room types. The
// optional date-range component of the key is ignored for the lookup.
func (c *HotelCatalog) Capacity(key models.ResourceKey) (int, bool) {
	parts := key.Parts()
	if len(parts) < 2 {
		return 0, false
	}

	capacity, ok := c.snapshot.Load().capacity[models.HotelResourceKey(parts[0], parts[1], "", "")]
	return capacity, ok
}

func matchHotel(hotel models.Hotel, filters models.HotelFilters) bool {
	if filters.City != "" && !strings.EqualFold(hotel.Address.City, filters.City) {
		return false
	}
	if filters.Country != "" && !strings.EqualFold(hotel.Address.Country, filters.Country) {
		return false
	}
	if filters.Guests > 0 && hotel.MaxGuests < filters.Guests {
		return false
	}
	for _, required := range filters.Amenities {
		found := false
		for _, amenity := range hotel.Amenities {
			if amenity == required {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
