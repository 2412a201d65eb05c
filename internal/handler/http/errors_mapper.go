package http

import (
	"errors"
	"net/http"

	"github.com/statravel/sta/internal/reservation"
	"github.com/statravel/sta/internal/service"
	"github.com/statravel/sta/internal/store"
)

var errorStatusMap = map[error]int{
	reservation.ErrInvalidRequest:          http.StatusBadRequest,
	reservation.ErrInsufficientInventory:   http.StatusConflict,
	reservation.ErrBookingNotFound:         http.StatusNotFound,
	reservation.ErrRetriesExhausted:        http.StatusServiceUnavailable,
	reservation.ErrTransactionsUnsupported: http.StatusServiceUnavailable,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrBookingRefRejected:  http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTripNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
