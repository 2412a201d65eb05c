package http

import (
	"net/http"
	"time"

	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

var startTime = time.Now()

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{
		Status: "ok",
		Uptime: time.Since(startTime).Seconds(),
	}, http.StatusOK)
}
