package weather

import (
	"time"

	"floodaware.app/internal/ports"
)

// Snapshot is a single normalized weather reading. It belongs to one evaluation cycle
// and is never cached.
type Snapshot struct {
	TemperatureC  float64   `json:"temperature_c"`
	ConditionText string    `json:"condition_text"`
	RainfallMm1h  float64   `json:"rainfall_mm_1h"`
	WindSpeedMs   float64   `json:"wind_speed_ms"`
	HumidityPct   int       `json:"humidity_pct"`
	ObservedAt    time.Time `json:"observed_at"`
}

// NewSnapshot normalizes a provider observation. Missing rainfall, wind speed and
// humidity become zero so threshold comparisons never see absent data.
// now is used when the provider did not report an observation time.
func NewSnapshot(obs *ports.WeatherObservation, now time.Time) *Snapshot {
	snapshot := &Snapshot{
		TemperatureC:  obs.Temperature,
		ConditionText: obs.Description,
		ObservedAt:    obs.ObservedAt,
	}
	if obs.RainfallMm1h != nil {
		snapshot.RainfallMm1h = *obs.RainfallMm1h
	}
	if obs.WindSpeedMs != nil {
		snapshot.WindSpeedMs = *obs.WindSpeedMs
	}
	if obs.HumidityPct != nil {
		snapshot.HumidityPct = *obs.HumidityPct
	}
	if snapshot.ObservedAt.IsZero() {
		snapshot.ObservedAt = now
	}
	return snapshot
}
