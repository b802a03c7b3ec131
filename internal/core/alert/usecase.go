package alert

import (
	"context"
	"fmt"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/risk"
	"floodaware.app/internal/core/weather"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// CoordinateResolver resolves the caller's position
type CoordinateResolver interface {
	Resolve(ctx context.Context, req ports.LocationRequest) location.Resolution
}

// SnapshotFetcher fetches weather for a position
type SnapshotFetcher interface {
	Fetch(ctx context.Context, coords *location.Coordinates) (*weather.Snapshot, error)
}

// UseCase builds the alert report for the caller's location
type UseCase struct {
	resolver   CoordinateResolver
	fetcher    SnapshotFetcher
	thresholds risk.Thresholds
	logger     ports.Logger
	metrics    ports.MetricsCollector
}

type UseCaseDependencies struct {
	Resolver CoordinateResolver
	Fetcher  SnapshotFetcher
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("coordinate resolver is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		resolver:   deps.Resolver,
		fetcher:    deps.Fetcher,
		thresholds: risk.ThresholdsFromConfig(deps.Config.GetRiskConfig()),
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}, nil
}

// Thresholds returns the alert threshold table in effect
func (uc *UseCase) Thresholds() risk.Thresholds {
	return uc.thresholds
}

// Report resolves the caller's position and classifies the weather there.
// An unresolved position is a valid outcome: the weather fetch is skipped and the
// report carries an explanatory message. Weather failures propagate.
func (uc *UseCase) Report(ctx context.Context, req ports.LocationRequest) (*Report, error) {
	resolution := uc.resolver.Resolve(ctx, req)

	report := &Report{
		Source:      resolution.Source.String(),
		Coordinates: resolution.Coordinates,
		Label:       resolution.Label,
		Level:       risk.LevelUnknown,
		Reasons:     []string{},
		Thresholds:  uc.thresholds,
	}
	if !resolution.IsResolved() {
		report.Message = MessageLocationUnavailable
		return report, nil
	}

	snapshot, err := uc.fetcher.Fetch(ctx, resolution.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("fetch alert weather: %w", err)
	}

	report.Snapshot = snapshot
	report.Level, report.Reasons = risk.Classify(*snapshot, uc.thresholds)
	uc.metrics.RecordClassification(report.Level.String())

	uc.logger.Debug("Alert report built",
		ports.F("source", report.Source),
		ports.F("level", report.Level.String()),
		ports.F("reasons", len(report.Reasons)))
	return report, nil
}
