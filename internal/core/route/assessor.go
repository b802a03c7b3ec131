package route

import (
	"strings"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/risk"
	"floodaware.app/internal/core/weather"
)

// Assess builds the rendering decision for a route. A missing destination snapshot
// fails open: the route renders green with an Unknown level.
func Assess(origin, destination location.Coordinates, destinationWeather *weather.Snapshot, thresholds risk.Thresholds) Assessment {
	assessment := Assessment{
		Origin:          origin,
		Destination:     destination,
		RiskLevel:       risk.LevelUnknown,
		RenderColor:     ColorGreen,
		Reasons:         []string{},
		Badge:           BadgeFor(destinationWeather),
		TravelCondition: TravelConditionFor(destinationWeather),
		Waypoints:       Waypoints(origin, destination),
		Weather:         destinationWeather,
	}
	if destinationWeather == nil {
		return assessment
	}

	level, reasons := risk.Classify(*destinationWeather, thresholds)
	assessment.RiskLevel = level
	assessment.Reasons = reasons
	assessment.RenderColor = RenderColorFor(level)
	return assessment
}

// RenderColorFor maps the risk level onto the two-state route renderer
func RenderColorFor(level risk.Level) Color {
	switch level {
	case risk.LevelMedium, risk.LevelHigh:
		return ColorRed
	default:
		return ColorGreen
	}
}

// BadgeFor classifies a snapshot on the route badge scale
func BadgeFor(s *weather.Snapshot) Badge {
	switch {
	case s == nil:
		return Badge{Label: BadgeUnknown, Color: ColorGray}
	case s.RainfallMm1h > 50 || s.WindSpeedMs > 20:
		return Badge{Label: BadgeHighRisk, Color: ColorRed}
	case s.RainfallMm1h > 25 || s.WindSpeedMs > 10:
		return Badge{Label: BadgeMediumRisk, Color: ColorOrange}
	default:
		return Badge{Label: BadgeLowRisk, Color: ColorGreen}
	}
}

// TravelConditionFor reports good travel weather: mild temperature and no rain
func TravelConditionFor(s *weather.Snapshot) TravelCondition {
	if s == nil {
		return TravelUnknown
	}
	mild := s.TemperatureC > 15 && s.TemperatureC < 35
	if mild && !strings.Contains(strings.ToLower(s.ConditionText), "rain") {
		return TravelGood
	}
	return TravelNotGood
}

// Waypoints returns the polyline origin, midpoint, destination
func Waypoints(origin, destination location.Coordinates) []location.Coordinates {
	return []location.Coordinates{
		origin,
		{
			Latitude:  (origin.Latitude + destination.Latitude) / 2,
			Longitude: (origin.Longitude + destination.Longitude) / 2,
		},
		destination,
	}
}
