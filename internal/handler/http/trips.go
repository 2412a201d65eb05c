package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	bearerToken, _ := utils.GetBearerTokenFromContext(ctx)

	var req models.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	trip, err := h.deps.Services.TripService.CreateTrip(ctx, ownerID, bearerToken, req)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("trip creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.TripResponse{Data: trip}, http.StatusCreated)
}

func (h *Handler) listTrips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := tripFilterFromQuery(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trips, err := h.deps.Services.TripService.ListTrips(ctx, ownerID, filter)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("trip listing failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.TripsResponse{Data: trips}, http.StatusOK)
}

func (h *Handler) getTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tripID, err := tripIDFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trip, err := h.deps.Services.TripService.GetTrip(ctx, tripID, ownerID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Int64("trip_id", tripID).Msg("trip lookup failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.TripResponse{Data: trip}, http.StatusOK)
}

// deleteTrip soft-deletes the trip and responds 204. Deleting an already
// deleted or foreign trip responds 404.
func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tripID, err := tripIDFromURL(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.deps.Services.TripService.DeleteTrip(ctx, tripID, ownerID); err != nil {
		log.Err(err).Str("owner_id", ownerID).Int64("trip_id", tripID).Msg("trip deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func tripIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "tripID")
	tripID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || tripID < 1 {
		return 0, ErrInvalidTripID
	}
	return tripID, nil
}

func tripFilterFromQuery(r *http.Request) (models.TripFilter, error) {
	query := r.URL.Query()

	var filter models.TripFilter
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.TripFilter{}, ErrInvalidPagingParams
		}
		filter.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return models.TripFilter{}, ErrInvalidPagingParams
		}
		filter.Limit = limit
	}

	return filter, nil
}
