package location

import (
	"context"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// UseCase resolves the caller's position through an ordered provider chain
type UseCase struct {
	providers []ports.LocationProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

type UseCaseDependencies struct {
	Providers []ports.LocationProvider
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if len(deps.Providers) == 0 {
		return nil, errors.NewValidationError("at least one location provider is required")
	}
	for _, p := range deps.Providers {
		if p == nil {
			return nil, errors.NewValidationError("location provider cannot be nil")
		}
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		providers: deps.Providers,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

// Resolve walks the chain in order and returns the first usable fix.
// Providers are tried sequentially, at most once each. Failures are absorbed and an
// exhausted chain yields Unresolved.
func (uc *UseCase) Resolve(ctx context.Context, req ports.LocationRequest) Resolution {
	var lastErr error

	for _, provider := range uc.providers {
		name := provider.GetProviderName()

		fix, err := provider.Locate(ctx, req)
		if err == nil && fix == nil {
			err = errors.NewLocationUnavailableError("provider returned no fix", nil)
		}
		if err != nil {
			uc.logger.Warn("Location provider failed, trying next",
				ports.F("provider", name),
				ports.F("error", err))
			uc.metrics.RecordLocationAttempt(name, false)
			lastErr = err
			continue
		}

		coords, err := NewCoordinates(fix.Latitude, fix.Longitude)
		if err != nil {
			uc.logger.Warn("Location provider returned unusable coordinates",
				ports.F("provider", name),
				ports.F("error", err))
			uc.metrics.RecordLocationAttempt(name, false)
			lastErr = err
			continue
		}

		uc.metrics.RecordLocationAttempt(name, true)
		resolution := resolutionFromFix(fix, coords)
		uc.metrics.RecordResolution(resolution.Source.String())

		uc.logger.Debug("Location resolved",
			ports.F("provider", name),
			ports.F("source", resolution.Source.String()),
			ports.F("coordinates", coords.String()))
		return resolution
	}

	uc.logger.Info("Location unresolved",
		ports.F("error", errors.NewLocationUnavailableError("all location providers failed", lastErr)))
	uc.metrics.RecordResolution(SourceUnresolved.String())
	return Unresolved()
}

func resolutionFromFix(fix *ports.LocationFix, coords *Coordinates) Resolution {
	if fix.Source == ports.LocationSourceDevice {
		return Resolution{Coordinates: coords, Source: SourceDevice}
	}
	return Resolution{
		Coordinates: coords,
		Source:      SourceIPGeolocation,
		Label:       &PlaceLabel{City: fix.City, Region: fix.Region},
	}
}
