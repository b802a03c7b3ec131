package weather

import (
	"context"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// UseCase fetches a fresh snapshot for a resolved position
type UseCase struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
	clock    clockwork.Clock
}

type UseCaseDependencies struct {
	Provider ports.WeatherProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	// Clock defaults to the real clock
	Clock clockwork.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &UseCase{
		provider: deps.Provider,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
	}, nil
}

// Fetch returns the current conditions at coords. Absent coordinates are rejected
// before any network call. Provider failures surface as NetworkError and are never retried.
func (uc *UseCase) Fetch(ctx context.Context, coords *location.Coordinates) (*Snapshot, error) {
	if coords == nil {
		return nil, errors.NewValidationError("coordinates are required to fetch weather")
	}

	providerName := uc.provider.GetProviderName()
	start := uc.clock.Now()

	obs, err := uc.provider.GetCurrentWeather(ctx, coords.Latitude, coords.Longitude)
	if err == nil && obs == nil {
		err = errors.NewNetworkError("weather provider returned an empty payload", nil)
	}
	uc.metrics.RecordWeatherFetch(providerName, err == nil, uc.clock.Since(start))
	if err != nil {
		uc.logger.Error("Failed to fetch weather",
			ports.F("provider", providerName),
			ports.F("coordinates", coords.String()),
			ports.F("error", err))
		if errors.IsNetworkError(err) {
			return nil, err
		}
		return nil, errors.NewNetworkError("weather provider failed", err)
	}

	snapshot := NewSnapshot(obs, uc.clock.Now())
	uc.logger.Debug("Weather snapshot fetched",
		ports.F("coordinates", coords.String()),
		ports.F("rainfall_mm_1h", snapshot.RainfallMm1h),
		ports.F("wind_speed_ms", snapshot.WindSpeedMs),
		ports.F("humidity_pct", snapshot.HumidityPct))
	return snapshot, nil
}
