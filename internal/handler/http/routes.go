package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// base builds a router with the middleware every service shares and the
// liveness probe.
func (h *Handler) base() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)

	return router
}

// InitFlightsRouter wires the flight catalog and booking routes.
func (h *Handler) InitFlightsRouter() *chi.Mux {
	router := h.base()

	router.Group(func(r chi.Router) {
		r.Get("/flights", h.searchFlights)
		r.Get("/flights/{flightID}", h.getFlight)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/bookings", h.bookFlight)
		r.Get("/bookings", h.listBookings)
		r.Get("/bookings/{bookingID}", h.getBooking)
		r.Delete("/bookings/{bookingID}", h.cancelBooking)
	})

	return router
}

// InitHotelsRouter wires the hotel catalog and booking routes.
func (h *Handler) InitHotelsRouter() *chi.Mux {
	router := h.base()

	router.Group(func(r chi.Router) {
		r.Get("/hotels", h.searchHotels)
		r.Get("/hotels/{hotelID}", h.getHotel)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/bookings", h.bookHotel)
		r.Get("/bookings", h.listBookings)
		r.Get("/bookings/{bookingID}", h.getBooking)
		r.Delete("/bookings/{bookingID}", h.cancelBooking)
	})

	return router
}

// InitTripsRouter wires the trip plan CRUD routes. All of them require
// authentication.
func (h *Handler) InitTripsRouter() *chi.Mux {
	router := h.base()

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/trips", h.createTrip)
		r.Get("/trips", h.listTrips)
		r.Get("/trips/{tripID}", h.getTrip)
		r.Delete("/trips/{tripID}", h.deleteTrip)
	})

	return router
}

// InitWeatherRouter wires the weather lookup route.
func (h *Handler) InitWeatherRouter() *chi.Mux {
	router := h.base()

	router.Get("/weather", h.searchWeather)

	return router
}

// InitAuthRouter wires registration, login and the profile route.
func (h *Handler) InitAuthRouter() *chi.Mux {
	router := h.base()

	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.me)
	})

	return router
}
