package http

import (
	"net/http"

	"github.com/MKhiriev/go-bangs/internal/app"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// health reports whether the database answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService

	body := healthResponse{Status: app.HealthStatusOK, Version: info.GetAppVersion(ctx)}
	status := http.StatusOK

	if err := info.Health(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		body.Status = app.HealthStatusUnavailable
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Send()
	}
}
