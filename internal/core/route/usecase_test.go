package route

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/risk"
	"floodaware.app/internal/core/weather"
	mocks "floodaware.app/internal/mocks"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

type planFixture struct {
	locationProvider *mocks.LocationProvider
	weatherProvider  *mocks.WeatherProvider
	store            *mocks.SelectionStore
	metrics          *mocks.MetricsCollector
	uc               *UseCase
}

func newPlanFixture(t *testing.T) *planFixture {
	f := &planFixture{
		locationProvider: mocks.NewLocationProvider(t),
		weatherProvider:  mocks.NewWeatherProvider(t),
		store:            mocks.NewSelectionStore(t),
		metrics:          mocks.NewMetricsCollector(t),
	}

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetRiskConfig().Return(ports.RiskConfig{RainfallMm1h: 50, WindSpeedMs: 15, HumidityPct: 85})
	config.EXPECT().GetRouteConfig().Return(ports.RouteConfig{SelectionTTL: 30 * time.Minute}).Maybe()

	f.locationProvider.EXPECT().GetProviderName().Return("ipapi").Maybe()
	f.weatherProvider.EXPECT().GetProviderName().Return("openweathermap").Maybe()
	f.metrics.EXPECT().RecordLocationAttempt(mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().RecordResolution(mock.Anything).Maybe()
	f.metrics.EXPECT().RecordWeatherFetch(mock.Anything, mock.Anything, mock.Anything).Maybe()

	resolver, err := location.NewUseCase(location.UseCaseDependencies{
		Providers: []ports.LocationProvider{f.locationProvider},
		Logger:    logger,
		Metrics:   f.metrics,
	})
	require.NoError(t, err)

	fetcher, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: f.weatherProvider,
		Logger:   logger,
		Metrics:  f.metrics,
	})
	require.NoError(t, err)

	f.uc, err = NewUseCase(UseCaseDependencies{
		Resolver:       resolver,
		Fetcher:        fetcher,
		SelectionStore: f.store,
		Config:         config,
		Logger:         logger,
		Metrics:        f.metrics,
	})
	require.NoError(t, err)
	return f
}

var lagosSelection = ports.Selection{Key: "Lagos", Latitude: 6.5244, Longitude: 3.3792}

func TestUseCase_Plan_Success(t *testing.T) {
	f := newPlanFixture(t)
	rain := 62.0

	f.store.EXPECT().Set(mock.Anything, "session-1", lagosSelection, 30*time.Minute).Return(nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, 6.5244, 3.3792).
		Return(&ports.WeatherObservation{Temperature: 25, Description: "heavy intensity rain", RainfallMm1h: &rain}, nil).Once()
	f.store.EXPECT().Get(mock.Anything, "session-1").Return(&lagosSelection, nil).Once()
	f.metrics.EXPECT().RecordClassification("High").Once()
	f.metrics.EXPECT().RecordRouteAssessment("red", false).Once()

	origin := &location.Coordinates{Latitude: 9.0765, Longitude: 7.3986}
	a, err := f.uc.Plan(context.Background(), PlanRequest{
		SessionID:      "session-1",
		DestinationKey: "lagos",
		Origin:         origin,
	})

	require.NoError(t, err)
	assert.Equal(t, risk.LevelHigh, a.RiskLevel)
	assert.Equal(t, ColorRed, a.RenderColor)
	assert.Equal(t, []string{"Heavy Rainfall: 62mm/h"}, a.Reasons)
	assert.Equal(t, Badge{BadgeHighRisk, ColorRed}, a.Badge)
	assert.Equal(t, TravelNotGood, a.TravelCondition)
	assert.Equal(t, *origin, a.Origin)
	assert.Len(t, a.Waypoints, 3)
	f.locationProvider.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything)
}

func TestUseCase_Plan_ResolvesOriginWhenMissing(t *testing.T) {
	f := newPlanFixture(t)

	f.locationProvider.EXPECT().Locate(mock.Anything, ports.LocationRequest{ClientIP: "102.89.0.10"}).
		Return(&ports.LocationFix{Latitude: 7.3776, Longitude: 3.947, City: "Ibadan", Region: "Oyo"}, nil).Once()
	f.store.EXPECT().Set(mock.Anything, "session-2", lagosSelection, mock.Anything).Return(nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(&ports.WeatherObservation{Temperature: 29, Description: "few clouds"}, nil).Once()
	f.store.EXPECT().Get(mock.Anything, "session-2").Return(&lagosSelection, nil).Once()
	f.metrics.EXPECT().RecordClassification("Low").Once()
	f.metrics.EXPECT().RecordRouteAssessment("green", false).Once()

	a, err := f.uc.Plan(context.Background(), PlanRequest{
		SessionID:      "session-2",
		DestinationKey: "Lagos",
		Location:       ports.LocationRequest{ClientIP: "102.89.0.10"},
	})

	require.NoError(t, err)
	assert.Equal(t, location.Coordinates{Latitude: 7.3776, Longitude: 3.947}, a.Origin)
	assert.Equal(t, TravelGood, a.TravelCondition)
	assert.Equal(t, []string{"No critical alerts for your area."}, a.Reasons)
}

func TestUseCase_Plan_UnresolvedOrigin(t *testing.T) {
	f := newPlanFixture(t)

	f.locationProvider.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("lookup failed", nil)).Once()

	a, err := f.uc.Plan(context.Background(), PlanRequest{SessionID: "s", DestinationKey: "Lagos"})

	assert.Nil(t, a)
	assert.True(t, errors.IsValidationError(err))
	f.weatherProvider.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Plan_UnknownDestination(t *testing.T) {
	f := newPlanFixture(t)

	a, err := f.uc.Plan(context.Background(), PlanRequest{SessionID: "s", DestinationKey: "Atlantis"})

	assert.Nil(t, a)
	assert.True(t, errors.IsValidationError(err))
	f.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Plan_DiscardsStaleResult(t *testing.T) {
	f := newPlanFixture(t)
	kano := ports.Selection{Key: "Kano", Latitude: 12.0022, Longitude: 8.591}

	f.store.EXPECT().Set(mock.Anything, "session-3", lagosSelection, mock.Anything).Return(nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(&ports.WeatherObservation{Temperature: 27, Description: "clear sky"}, nil).Once()
	// the user picked Kano while Lagos weather was in flight
	f.store.EXPECT().Get(mock.Anything, "session-3").Return(&kano, nil).Once()
	f.metrics.EXPECT().RecordRouteAssessment("", true).Once()

	a, err := f.uc.Plan(context.Background(), PlanRequest{
		SessionID:      "session-3",
		DestinationKey: "Lagos",
		Origin:         &location.Coordinates{Latitude: 9, Longitude: 7},
	})

	assert.Nil(t, a)
	assert.True(t, errors.IsStaleResultError(err))
}

func TestUseCase_Plan_ClearedSelectionIsStale(t *testing.T) {
	f := newPlanFixture(t)

	f.store.EXPECT().Set(mock.Anything, "session-4", lagosSelection, mock.Anything).Return(nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(&ports.WeatherObservation{Temperature: 27}, nil).Once()
	f.store.EXPECT().Get(mock.Anything, "session-4").Return(nil, errors.NewNotFoundError("no selection")).Once()
	f.metrics.EXPECT().RecordRouteAssessment("", true).Once()

	_, err := f.uc.Plan(context.Background(), PlanRequest{
		SessionID:      "session-4",
		DestinationKey: "Lagos",
		Origin:         &location.Coordinates{Latitude: 9, Longitude: 7},
	})

	assert.True(t, errors.IsStaleResultError(err))
}

func TestUseCase_Plan_WeatherFailureRendersUnknown(t *testing.T) {
	f := newPlanFixture(t)

	f.store.EXPECT().Set(mock.Anything, "session-5", lagosSelection, mock.Anything).Return(nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("weather provider returned status 503", nil)).Once()
	f.store.EXPECT().Get(mock.Anything, "session-5").Return(&lagosSelection, nil).Once()
	f.metrics.EXPECT().RecordRouteAssessment("green", false).Once()

	a, err := f.uc.Plan(context.Background(), PlanRequest{
		SessionID:      "session-5",
		DestinationKey: "Lagos",
		Origin:         &location.Coordinates{Latitude: 9, Longitude: 7},
	})

	require.NoError(t, err)
	assert.Equal(t, risk.LevelUnknown, a.RiskLevel)
	assert.Equal(t, ColorGreen, a.RenderColor)
	assert.Equal(t, BadgeUnknown, a.Badge.Label)
}

func TestUseCase_SelectAndClear(t *testing.T) {
	f := newPlanFixture(t)
	kano := ports.Selection{Key: "Kano", Latitude: 12.0022, Longitude: 8.591}

	f.store.EXPECT().Set(mock.Anything, "session-6", kano, 30*time.Minute).Return(nil).Once()
	f.store.EXPECT().Delete(mock.Anything, "session-6").Return(nil).Once()

	dest, err := f.uc.Select(context.Background(), "session-6", "kano")
	require.NoError(t, err)
	assert.Equal(t, "Kano", dest.Key)

	require.NoError(t, f.uc.ClearSelection(context.Background(), "session-6"))

	_, err = f.uc.Select(context.Background(), "session-6", "nowhere")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(f.uc.ClearSelection(context.Background(), " ")))
}
