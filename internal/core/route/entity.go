package route

import (
	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/risk"
	"floodaware.app/internal/core/weather"
)

// Color is a route rendering color
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

// Badge is the route-specific risk badge. Its scale is independent from the alert thresholds.
type Badge struct {
	Label string `json:"label"`
	Color Color  `json:"color"`
}

// Badge labels
const (
	BadgeHighRisk   = "High Risk"
	BadgeMediumRisk = "Medium Risk"
	BadgeLowRisk    = "Low Risk"
	BadgeUnknown    = "unknown"
)

// TravelCondition is an informational verdict on conditions at the destination
type TravelCondition string

const (
	TravelGood    TravelCondition = "good"
	TravelNotGood TravelCondition = "not good"
	// TravelUnknown is used when no destination weather is available
	TravelUnknown TravelCondition = ""
)

// Assessment is the rendering decision for a planned route
type Assessment struct {
	Origin          location.Coordinates   `json:"origin"`
	Destination     location.Coordinates   `json:"destination"`
	RiskLevel       risk.Level             `json:"risk_level"`
	RenderColor     Color                  `json:"render_color"`
	Reasons         []string               `json:"reasons"`
	Badge           Badge                  `json:"badge"`
	TravelCondition TravelCondition        `json:"travel_condition,omitempty"`
	Waypoints       []location.Coordinates `json:"waypoints"`
	Weather         *weather.Snapshot      `json:"weather,omitempty"`
}

// Destination is a named, selectable route target
type Destination struct {
	Key         string               `json:"key"`
	Name        string               `json:"name"`
	Coordinates location.Coordinates `json:"coordinates"`
}
