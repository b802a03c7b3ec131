package ports

import (
	"context"
	"time"
)

// WeatherObservation is a provider reading before normalization.
// Optional upstream fields are nil when the provider omitted them.
type WeatherObservation struct {
	Temperature  float64
	Description  string
	RainfallMm1h *float64
	WindSpeedMs  *float64
	HumidityPct  *int
	ObservedAt   time.Time
}

// WeatherProvider defines the contract for coordinate-based weather providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*WeatherObservation, error)
	GetProviderName() string
}
