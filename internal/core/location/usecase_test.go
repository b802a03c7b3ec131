package location

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mocks "floodaware.app/internal/mocks"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

func newQuietLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newProvider(t *testing.T, name string) *mocks.LocationProvider {
	p := mocks.NewLocationProvider(t)
	p.EXPECT().GetProviderName().Return(name).Maybe()
	return p
}

func TestUseCase_Resolve_DeviceDeniedFallsBackToIPLookup(t *testing.T) {
	device := newProvider(t, "device")
	ipinfo := newProvider(t, "ipinfo")
	metrics := mocks.NewMetricsCollector(t)

	device.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewLocationUnavailableError("permission denied", nil)).Once()
	ipinfo.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{
			Latitude:  6.52,
			Longitude: 3.37,
			City:      "Lagos",
			Region:    "Lagos",
			Source:    ports.LocationSourceIPGeolocation,
		}, nil).Once()

	metrics.EXPECT().RecordLocationAttempt("device", false).Once()
	metrics.EXPECT().RecordLocationAttempt("ipinfo", true).Once()
	metrics.EXPECT().RecordResolution("ip_geolocation").Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Providers: []ports.LocationProvider{device, ipinfo},
		Logger:    newQuietLogger(t),
		Metrics:   metrics,
	})
	require.NoError(t, err)

	res := uc.Resolve(context.Background(), ports.LocationRequest{ClientIP: "102.89.1.1"})

	require.True(t, res.IsResolved())
	assert.Equal(t, Coordinates{Latitude: 6.52, Longitude: 3.37}, *res.Coordinates)
	assert.Equal(t, SourceIPGeolocation, res.Source)
	require.NotNil(t, res.Label)
	assert.Equal(t, "Lagos", res.Label.City)
}

func TestUseCase_Resolve_AllProvidersFail(t *testing.T) {
	device := newProvider(t, "device")
	ipinfo := newProvider(t, "ipinfo")
	ipapi := newProvider(t, "ipapi")
	metrics := mocks.NewMetricsCollector(t)

	device.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewLocationUnavailableError("timeout", context.DeadlineExceeded)).Once()
	ipinfo.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("lookup failed", nil)).Once()
	ipapi.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewNetworkError("malformed loc", nil)).Once()

	metrics.EXPECT().RecordLocationAttempt(mock.Anything, false).Times(3)
	metrics.EXPECT().RecordResolution("unresolved").Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Providers: []ports.LocationProvider{device, ipinfo, ipapi},
		Logger:    newQuietLogger(t),
		Metrics:   metrics,
	})
	require.NoError(t, err)

	res := uc.Resolve(context.Background(), ports.LocationRequest{})

	assert.Nil(t, res.Coordinates)
	assert.Equal(t, SourceUnresolved, res.Source)
	assert.Equal(t, &PlaceLabel{City: "Unknown", Region: "Unknown"}, res.Label)
}

func TestUseCase_Resolve_DeviceSuccessStopsChain(t *testing.T) {
	device := newProvider(t, "device")
	ipinfo := newProvider(t, "ipinfo")
	metrics := mocks.NewMetricsCollector(t)

	device.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{Latitude: 9.05, Longitude: 7.49, Source: ports.LocationSourceDevice}, nil).Once()
	metrics.EXPECT().RecordLocationAttempt("device", true).Once()
	metrics.EXPECT().RecordResolution("device").Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Providers: []ports.LocationProvider{device, ipinfo},
		Logger:    newQuietLogger(t),
		Metrics:   metrics,
	})
	require.NoError(t, err)

	res := uc.Resolve(context.Background(), ports.LocationRequest{})

	assert.Equal(t, SourceDevice, res.Source)
	assert.Nil(t, res.Label)
	assert.Equal(t, 9.05, res.Coordinates.Latitude)
	ipinfo.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_SkipsUnusableCoordinates(t *testing.T) {
	ipinfo := newProvider(t, "ipinfo")
	ipapi := newProvider(t, "ipapi")
	metrics := mocks.NewMetricsCollector(t)

	ipinfo.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{Latitude: math.NaN(), Longitude: 3.37}, nil).Once()
	ipapi.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{Latitude: 7.38, Longitude: 3.94, City: "Ibadan", Region: "Oyo"}, nil).Once()
	metrics.EXPECT().RecordLocationAttempt("ipinfo", false).Once()
	metrics.EXPECT().RecordLocationAttempt("ipapi", true).Once()
	metrics.EXPECT().RecordResolution("ip_geolocation").Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Providers: []ports.LocationProvider{ipinfo, ipapi},
		Logger:    newQuietLogger(t),
		Metrics:   metrics,
	})
	require.NoError(t, err)

	res := uc.Resolve(context.Background(), ports.LocationRequest{})

	assert.Equal(t, &PlaceLabel{City: "Ibadan", Region: "Oyo"}, res.Label)
	assert.Equal(t, 7.38, res.Coordinates.Latitude)
}

func TestUseCase_Resolve_RestartsChainOnEveryCall(t *testing.T) {
	device := newProvider(t, "device")
	metrics := mocks.NewMetricsCollector(t)

	device.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(nil, errors.NewLocationUnavailableError("denied", nil)).Once()
	device.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&ports.LocationFix{Latitude: 4.81, Longitude: 7.05, Source: ports.LocationSourceDevice}, nil).Once()
	metrics.EXPECT().RecordLocationAttempt("device", mock.Anything).Times(2)
	metrics.EXPECT().RecordResolution(mock.Anything).Times(2)

	uc, err := NewUseCase(UseCaseDependencies{
		Providers: []ports.LocationProvider{device},
		Logger:    newQuietLogger(t),
		Metrics:   metrics,
	})
	require.NoError(t, err)

	first := uc.Resolve(context.Background(), ports.LocationRequest{})
	second := uc.Resolve(context.Background(), ports.LocationRequest{})

	assert.False(t, first.IsResolved())
	assert.True(t, second.IsResolved())
	assert.Equal(t, SourceDevice, second.Source)
}

func TestNewUseCase_Validation(t *testing.T) {
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	provider := mocks.NewLocationProvider(t)

	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{"NoProviders", UseCaseDependencies{Logger: logger, Metrics: metrics}},
		{"NilProvider", UseCaseDependencies{Providers: []ports.LocationProvider{nil}, Logger: logger, Metrics: metrics}},
		{"NoLogger", UseCaseDependencies{Providers: []ports.LocationProvider{provider}, Metrics: metrics}},
		{"NoMetrics", UseCaseDependencies{Providers: []ports.LocationProvider{provider}, Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
