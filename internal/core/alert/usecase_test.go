package alert

import (
	"context"
	"testing"

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

type alertFixture struct {
	locationProvider *mocks.LocationProvider
	weatherProvider  *mocks.WeatherProvider
	metrics          *mocks.MetricsCollector
	uc               *UseCase
}

func newAlertFixture(t *testing.T) *alertFixture {
	f := &alertFixture{
		locationProvider: mocks.NewLocationProvider(t),
		weatherProvider:  mocks.NewWeatherProvider(t),
		metrics:          mocks.NewMetricsCollector(t),
	}

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetRiskConfig().Return(ports.RiskConfig{RainfallMm1h: 50, WindSpeedMs: 15, HumidityPct: 85})

	f.locationProvider.EXPECT().GetProviderName().Return("ipinfo").Maybe()
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
		Resolver: resolver,
		Fetcher:  fetcher,
		Config:   config,
		Logger:   logger,
		Metrics:  f.metrics,
	})
	require.NoError(t, err)
	return f
}

func TestUseCase_Report_ClassifiesLocalWeather(t *testing.T) {
	f := newAlertFixture(t)
	wind, humidity := 20.0, 90

	f.locationProvider.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{Latitude: 6.52, Longitude: 3.37, City: "Lagos", Region: "Lagos"}, nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, 6.52, 3.37).
		Return(&ports.WeatherObservation{Temperature: 27, Description: "thunderstorm", WindSpeedMs: &wind, HumidityPct: &humidity}, nil).Once()
	f.metrics.EXPECT().RecordClassification("Medium").Once()

	report, err := f.uc.Report(context.Background(), ports.LocationRequest{})

	require.NoError(t, err)
	assert.Equal(t, "ip_geolocation", report.Source)
	assert.Equal(t, risk.LevelMedium, report.Level)
	assert.Equal(t, []string{"High Wind Speed: 20 m/s", "High Humidity: 90%"}, report.Reasons)
	assert.Equal(t, risk.DefaultThresholds(), report.Thresholds)
	assert.Empty(t, report.Message)
	require.NotNil(t, report.Snapshot)
	assert.Zero(t, report.Snapshot.RainfallMm1h)
}

func TestUseCase_Report_UnresolvedSkipsWeatherFetch(t *testing.T) {
	f := newAlertFixture(t)

	f.locationProvider.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("lookup blocked", nil)).Once()

	report, err := f.uc.Report(context.Background(), ports.LocationRequest{})

	require.NoError(t, err)
	assert.Equal(t, "unresolved", report.Source)
	assert.Nil(t, report.Coordinates)
	assert.Equal(t, &location.PlaceLabel{City: "Unknown", Region: "Unknown"}, report.Label)
	assert.Equal(t, risk.LevelUnknown, report.Level)
	assert.Equal(t, MessageLocationUnavailable, report.Message)
	f.weatherProvider.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Report_WeatherFailurePropagates(t *testing.T) {
	f := newAlertFixture(t)

	f.locationProvider.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{Latitude: 6.52, Longitude: 3.37}, nil).Once()
	f.weatherProvider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("weather provider returned status 500", nil)).Once()

	report, err := f.uc.Report(context.Background(), ports.LocationRequest{})

	assert.Nil(t, report)
	assert.True(t, errors.IsNetworkError(err))
}
