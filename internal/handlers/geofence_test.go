package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clara-backend/internal/models"
	"clara-backend/internal/services"
)

type stubAlertSender struct {
	messageID string
	err       error
	calls     int
}

func (s *stubAlertSender) SendOutOfRangeAlert(ctx context.Context) (string, error) {
	s.calls++
	return s.messageID, s.err
}

func postGeofence(t *testing.T, h *GeofenceHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/geofence", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Report(rr, req)
	return rr
}

func TestGeofenceHandler_InRangeSendsNothing(t *testing.T) {
	sender := &stubAlertSender{messageID: "SM1"}
	h := NewGeofenceHandler(sender)

	rr := postGeofence(t, h, `{"in_range": true, "location": {}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"in range"}`, rr.Body.String())
	assert.Equal(t, 0, sender.calls)
}

func TestGeofenceHandler_OutOfRangeSendsSMS(t *testing.T) {
	sender := &stubAlertSender{messageID: "SM0123456789"}
	h := NewGeofenceHandler(sender)

	rr := postGeofence(t, h, `{"in_range": false, "location": {"lat": 40.0, "lng": -75.0}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.GeofenceResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "sms sent", resp.Status)
	assert.Equal(t, "SM0123456789", resp.MessageID)
	assert.Equal(t, 1, sender.calls)
}

func TestGeofenceHandler_RepeatedReportsAreNotDeduplicated(t *testing.T) {
	sender := &stubAlertSender{messageID: "SM1"}
	h := NewGeofenceHandler(sender)
	body := `{"in_range": false, "location": {"lat": 40.0, "lng": -75.0}}`

	postGeofence(t, h, body)
	postGeofence(t, h, body)

	assert.Equal(t, 2, sender.calls)
}

func TestGeofenceHandler_ProviderFailure(t *testing.T) {
	sender := &stubAlertSender{err: &services.UpstreamError{Provider: "twilio", Err: errors.New("Authenticate")}}
	h := NewGeofenceHandler(sender)

	rr := postGeofence(t, h, `{"in_range": false, "location": {}}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"Authenticate"}`, rr.Body.String())
}

func TestGeofenceHandler_RejectsMalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"in_range":`},
		{"missing in_range", `{"location": {}}`},
		{"in_range not bool", `{"in_range": "no", "location": {}}`},
		{"location not object", `{"in_range": false, "location": 5}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sender := &stubAlertSender{messageID: "SM1"}
			h := NewGeofenceHandler(sender)

			rr := postGeofence(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 0, sender.calls)
		})
	}
}
