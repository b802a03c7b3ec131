package route

import (
	"context"
	"fmt"
	"strings"

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

// SnapshotFetcher fetches destination weather
type SnapshotFetcher interface {
	Fetch(ctx context.Context, coords *location.Coordinates) (*weather.Snapshot, error)
}

// PlanRequest describes one route planning cycle for a session
type PlanRequest struct {
	SessionID      string
	DestinationKey string
	// Origin is resolved through the location chain when nil
	Origin   *location.Coordinates
	Location ports.LocationRequest
}

// UseCase plans routes and keeps the per-session destination selection
type UseCase struct {
	resolver   CoordinateResolver
	fetcher    SnapshotFetcher
	store      ports.SelectionStore
	config     ports.ConfigProvider
	thresholds risk.Thresholds
	logger     ports.Logger
	metrics    ports.MetricsCollector
}

type UseCaseDependencies struct {
	Resolver       CoordinateResolver
	Fetcher        SnapshotFetcher
	SelectionStore ports.SelectionStore
	Config         ports.ConfigProvider
	Logger         ports.Logger
	Metrics        ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("coordinate resolver is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.SelectionStore == nil {
		return nil, errors.NewValidationError("selection store is required")
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
		store:      deps.SelectionStore,
		config:     deps.Config,
		thresholds: risk.ThresholdsFromConfig(deps.Config.GetRiskConfig()),
		logger:     deps.Logger,
		metrics:    deps.Metrics,
	}, nil
}

// Plan selects the destination for the session and assesses the route to it.
// If the session's selection changes while destination weather is in flight the
// result is discarded with a StaleResult error.
func (uc *UseCase) Plan(ctx context.Context, req PlanRequest) (*Assessment, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, errors.NewValidationError("session id is required")
	}
	dest, destCoords := LookupDestination(req.DestinationKey)
	if destCoords == nil {
		return nil, errors.NewValidationError("a known destination must be selected")
	}

	origin := req.Origin
	if origin == nil {
		resolution := uc.resolver.Resolve(ctx, req.Location)
		if !resolution.IsResolved() {
			return nil, errors.NewValidationError("origin could not be determined")
		}
		origin = resolution.Coordinates
	}

	if err := uc.record(ctx, req.SessionID, dest); err != nil {
		return nil, err
	}

	snapshot, err := uc.fetcher.Fetch(ctx, destCoords)
	if err != nil {
		if !errors.IsNetworkError(err) {
			return nil, fmt.Errorf("fetch destination weather: %w", err)
		}
		uc.logger.Warn("Destination weather unavailable, assessing without it",
			ports.F("destination", dest.Key),
			ports.F("error", err))
		snapshot = nil
	}

	if err := uc.ensureCurrent(ctx, req.SessionID, *destCoords); err != nil {
		uc.metrics.RecordRouteAssessment("", true)
		return nil, err
	}

	assessment := Assess(*origin, *destCoords, snapshot, uc.thresholds)
	if snapshot != nil {
		uc.metrics.RecordClassification(assessment.RiskLevel.String())
	}
	uc.metrics.RecordRouteAssessment(string(assessment.RenderColor), false)

	uc.logger.Info("Route assessed",
		ports.F("session_id", req.SessionID),
		ports.F("destination", dest.Key),
		ports.F("risk_level", assessment.RiskLevel.String()),
		ports.F("render_color", string(assessment.RenderColor)))
	return &assessment, nil
}

// Select changes the session's destination without assessing a route
func (uc *UseCase) Select(ctx context.Context, sessionID, destinationKey string) (*Destination, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.NewValidationError("session id is required")
	}
	dest, _ := LookupDestination(destinationKey)
	if dest == nil {
		return nil, errors.NewValidationError("a known destination must be selected")
	}
	if err := uc.record(ctx, sessionID, dest); err != nil {
		return nil, err
	}
	return dest, nil
}

// ClearSelection forgets the session's destination
func (uc *UseCase) ClearSelection(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.NewValidationError("session id is required")
	}
	if err := uc.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear destination selection: %w", err)
	}
	return nil
}

func (uc *UseCase) record(ctx context.Context, sessionID string, dest *Destination) error {
	selection := ports.Selection{
		Key:       dest.Key,
		Latitude:  dest.Coordinates.Latitude,
		Longitude: dest.Coordinates.Longitude,
	}
	ttl := uc.config.GetRouteConfig().SelectionTTL
	if err := uc.store.Set(ctx, sessionID, selection, ttl); err != nil {
		return fmt.Errorf("record destination selection: %w", err)
	}
	return nil
}

// ensureCurrent compares the session's current selection with the destination a
// result was computed for, by value.
func (uc *UseCase) ensureCurrent(ctx context.Context, sessionID string, destination location.Coordinates) error {
	current, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewStaleResultError("destination selection was cleared")
		}
		return fmt.Errorf("read destination selection: %w", err)
	}

	selected := location.Coordinates{Latitude: current.Latitude, Longitude: current.Longitude}
	if !selected.Equal(destination) {
		uc.logger.Info("Discarding stale route result",
			ports.F("session_id", sessionID),
			ports.F("computed_for", destination.String()),
			ports.F("current", selected.String()))
		return errors.NewStaleResultError("destination selection changed")
	}
	return nil
}
