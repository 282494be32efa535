package handlers

import (
	"context"
	"net/http"

	"clara-backend/internal/middleware"
	"clara-backend/internal/models"
	"clara-backend/pkg/log"
)

type alertSender interface {
	SendOutOfRangeAlert(ctx context.Context) (string, error)
}

type GeofenceHandler struct {
	alerts alertSender
}

func NewGeofenceHandler(alerts alertSender) *GeofenceHandler {
	return &GeofenceHandler{alerts: alerts}
}

// Report handles a geofence status update. Out-of-range reports are not
// deduplicated: each one texts the caregiver again.
func (h *GeofenceHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req models.GeofenceStatus
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(err.Error()))
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	if *req.InRange {
		log.Infow("Geofence report: in range", "request_id", requestID)
		writeJSON(w, http.StatusOK, models.GeofenceResponse{Status: models.GeofenceStatusInRange})
		return
	}

	log.Warnw("Geofence report: out of range",
		"location", req.Location,
		"request_id", requestID,
	)

	messageID, err := h.alerts.SendOutOfRangeAlert(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GeofenceResponse{
		Status:    models.GeofenceStatusSMSSent,
		MessageID: messageID,
	})
}
