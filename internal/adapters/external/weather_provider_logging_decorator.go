package external

import (
	"context"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	clock    clockwork.Clock
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger, clock clockwork.Clock) ports.WeatherProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		clock:    clock,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, lat, lon float64) (*ports.WeatherObservation, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "request"))

	startTime := d.clock.Now()
	obs, err := d.provider.GetCurrentWeather(ctx, lat, lon)
	duration := d.clock.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", obs.Temperature),
		ports.F("description", obs.Description))

	return obs, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
