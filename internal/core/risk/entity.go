package risk

import "floodaware.app/internal/ports"

// Level is an ordered severity: Unknown < Low < Medium < High
type Level int

const (
	LevelUnknown Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the level by name
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Max returns the more severe of two levels
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}

// Thresholds is the alert threshold table. It is read-only once loaded.
type Thresholds struct {
	RainfallMm1h float64 `json:"rainfall_mm_1h"`
	WindSpeedMs  float64 `json:"wind_speed_ms"`
	HumidityPct  int     `json:"humidity_pct"`
}

// DefaultThresholds returns the stock alert table
func DefaultThresholds() Thresholds {
	return Thresholds{
		RainfallMm1h: 50,
		WindSpeedMs:  15,
		HumidityPct:  85,
	}
}

// ThresholdsFromConfig builds the table from loaded configuration
func ThresholdsFromConfig(cfg ports.RiskConfig) Thresholds {
	return Thresholds{
		RainfallMm1h: cfg.RainfallMm1h,
		WindSpeedMs:  cfg.WindSpeedMs,
		HumidityPct:  cfg.HumidityPct,
	}
}
