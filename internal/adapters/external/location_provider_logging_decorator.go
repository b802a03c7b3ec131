package external

import (
	"context"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/ports"
)

// LocationProviderLoggingDecorator decorates location providers with structured logging
type LocationProviderLoggingDecorator struct {
	provider ports.LocationProvider
	logger   ports.Logger
	clock    clockwork.Clock
}

// NewLocationProviderLoggingDecorator creates a new logging decorator for location providers
func NewLocationProviderLoggingDecorator(provider ports.LocationProvider, logger ports.Logger, clock clockwork.Clock) ports.LocationProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LocationProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		clock:    clock,
	}
}

// Locate wraps the provider call with structured logging
func (d *LocationProviderLoggingDecorator) Locate(ctx context.Context, req ports.LocationRequest) (*ports.LocationFix, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Location lookup started",
		ports.F("provider", providerName),
		ports.F("client_ip", req.ClientIP),
		ports.F("device_available", req.Device != nil),
		ports.F("event", "request"))

	startTime := d.clock.Now()
	fix, err := d.provider.Locate(ctx, req)
	duration := d.clock.Since(startTime)

	if err != nil {
		d.logger.Warn("Location lookup failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Location lookup completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("source", fix.Source),
		ports.F("city", fix.City))

	return fix, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *LocationProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
