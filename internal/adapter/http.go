package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/statravel/sta/internal/config"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/utils"
)

type httpBookingVerifier struct {
	flights *utils.HTTPClient
	hotels  *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBookingVerifier constructs a REST implementation of
// [BookingVerifier] over the flights and hotels services named in cfg.
//
// Returns an error if either base URL is empty or cannot be parsed.
func NewHTTPBookingVerifier(cfg config.Adapter, logger *logger.Logger) (BookingVerifier, error) {
	flightsURL, err := normalizeBaseURL(cfg.FlightsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid flights service address: %w", err)
	}
	hotelsURL, err := normalizeBaseURL(cfg.HotelsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid hotels service address: %w", err)
	}

	flights := utils.NewHTTPClient()
	flights.SetBaseURL(flightsURL).SetTimeout(cfg.RequestTimeout)

	hotels := utils.NewHTTPClient()
	hotels.SetBaseURL(hotelsURL).SetTimeout(cfg.RequestTimeout)

	return &httpBookingVerifier{flights: flights, hotels: hotels, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// VerifyFlightBooking implements [BookingVerifier]. It asks the flights
// service for the booking detail under the caller's own credentials.
func (v *httpBookingVerifier) VerifyFlightBooking(ctx context.Context, bearerToken, bookingID string) error {
	return v.verify(ctx, v.flights, bearerToken, bookingID)
}

// VerifyHotelBooking implements [BookingVerifier].
func (v *httpBookingVerifier) VerifyHotelBooking(ctx context.Context, bearerToken, bookingID string) error {
	return v.verify(ctx, v.hotels, bearerToken, bookingID)
}

func (v *httpBookingVerifier) verify(ctx context.Context, client *utils.HTTPClient, bearerToken, bookingID string) error {
	resp, err := client.R().
		SetContext(ctx).
		SetAuthToken(bearerToken).
		SetPathParam("bookingID", bookingID).
		Get("/bookings/{bookingID}")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return mapVerifyResponse(resp)
}

func mapVerifyResponse(resp *resty.Response) error {
	switch {
	case resp.StatusCode() == http.StatusOK:
		return nil
	case resp.StatusCode() == http.StatusNotFound:
		return ErrBookingRefNotFound
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrServiceUnavailable, resp.StatusCode())
	}
}
