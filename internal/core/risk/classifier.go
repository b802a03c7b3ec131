package risk

import (
	"strconv"

	"floodaware.app/internal/core/weather"
)

// NoAlertsReason is the single reason reported when no rule fires
const NoAlertsReason = "No critical alerts for your area."

type rule struct {
	level     Level
	triggered func(s weather.Snapshot, t Thresholds) bool
	reason    func(s weather.Snapshot) string
}

// rules are evaluated in declaration order, which is also the reason order
var rules = []rule{
	{
		level:     LevelHigh,
		triggered: func(s weather.Snapshot, t Thresholds) bool { return s.RainfallMm1h > t.RainfallMm1h },
		reason:    func(s weather.Snapshot) string { return "Heavy Rainfall: " + formatFloat(s.RainfallMm1h) + "mm/h" },
	},
	{
		level:     LevelMedium,
		triggered: func(s weather.Snapshot, t Thresholds) bool { return s.WindSpeedMs > t.WindSpeedMs },
		reason:    func(s weather.Snapshot) string { return "High Wind Speed: " + formatFloat(s.WindSpeedMs) + " m/s" },
	},
	{
		level:     LevelMedium,
		triggered: func(s weather.Snapshot, t Thresholds) bool { return s.HumidityPct > t.HumidityPct },
		reason:    func(s weather.Snapshot) string { return "High Humidity: " + strconv.Itoa(s.HumidityPct) + "%" },
	},
}

// Classify maps a snapshot to a risk level and its reasons. Every rule is evaluated;
// the level is the maximum over the rules that fired.
func Classify(snapshot weather.Snapshot, thresholds Thresholds) (Level, []string) {
	level := LevelUnknown
	var reasons []string

	for _, r := range rules {
		if !r.triggered(snapshot, thresholds) {
			continue
		}
		level = Max(level, r.level)
		reasons = append(reasons, r.reason(snapshot))
	}

	if len(reasons) == 0 {
		return LevelLow, []string{NoAlertsReason}
	}
	return level, reasons
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
