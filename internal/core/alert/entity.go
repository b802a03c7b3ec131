package alert

import (
	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/risk"
	"floodaware.app/internal/core/weather"
)

// MessageLocationUnavailable is reported when the caller's position could not be resolved
const MessageLocationUnavailable = "Unable to determine your location for fetching alerts."

// Report is the alert list for the current user
type Report struct {
	Source      string                `json:"source"`
	Coordinates *location.Coordinates `json:"coordinates,omitempty"`
	Label       *location.PlaceLabel  `json:"label,omitempty"`
	Level       risk.Level            `json:"level"`
	Reasons     []string              `json:"reasons"`
	Snapshot    *weather.Snapshot     `json:"snapshot,omitempty"`
	Thresholds  risk.Thresholds       `json:"thresholds"`
	Message     string                `json:"message,omitempty"`
}
