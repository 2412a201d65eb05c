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

// WeatherCatalog holds the weather snapshot catalogue. Weather is read-only
// and carries no inventory.
type WeatherCatalog struct {
	loader   Loader
	logger   *logger.Logger
	snapshot atomic.Pointer[[]models.WeatherReport]
}

func NewWeatherCatalog(loader Loader, log *logger.Logger) *WeatherCatalog {
	c := &WeatherCatalog{loader: loader, logger: log}
	empty := []models.WeatherReport{}
	c.snapshot.Store(&empty)
	return c
}

// Reload fetches and parses the catalogue object and swaps in the new
// snapshot. On error the previous snapshot stays live.
func (c *WeatherCatalog) Reload(ctx context.Context) error {
	data, err := c.loader.Load(ctx)
	if err != nil {
		return err
	}

	var reports []models.WeatherReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return fmt.Errorf("malformed weather catalogue: %w", err)
	}

	c.snapshot.Store(&reports)
	c.logger.Info().Int("reports", len(reports)).Msg("weather catalogue loaded")
	return nil
}

// Search filters the catalogue and sorts results by date ascending.
func (c *WeatherCatalog) Search(filters models.WeatherFilters) []models.WeatherReport {
	var results []models.WeatherReport
	for _, report := range *c.snapshot.Load() {
		if !matchWeather(report, filters) {
			continue
		}
		results = append(results, report)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date < results[j].Date
	})

	return results
}

func matchWeather(report models.WeatherReport, filters models.WeatherFilters) bool {
	if filters.IATA != "" && !strings.EqualFold(report.Location.IATA, filters.IATA) {
		return false
	}
	if filters.City != "" && !strings.EqualFold(report.Location.City, filters.City) {
		return false
	}
	if filters.Country != "" && !strings.EqualFold(report.Location.Country, filters.Country) {
		return false
	}
	if filters.Date != "" && report.Date != filters.Date {
		return false
	}
	return true
}
