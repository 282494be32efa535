package models

const (
	GeofenceStatusInRange = "in range"
	GeofenceStatusSMSSent = "sms sent"
)

// GeofenceStatus is reported by the mobile client whenever the wearer's
// position is re-evaluated against the safe zone.
type GeofenceStatus struct {
	InRange  *bool          `json:"in_range" validate:"required"`
	Location map[string]any `json:"location"`
}

type GeofenceResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id,omitempty"`
}
