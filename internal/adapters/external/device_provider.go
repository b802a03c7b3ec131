package external

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// DeviceProviderAdapter implements LocationProvider over the client's device geolocation.
// The wait for a fix is bounded so the chain cannot stall.
type DeviceProviderAdapter struct {
	timeout time.Duration
	clock   clockwork.Clock
}

// DeviceProviderParams holds parameters for creating the device provider
type DeviceProviderParams struct {
	Timeout time.Duration
	Clock   clockwork.Clock
}

// NewDeviceProviderAdapter creates a new device geolocation provider
func NewDeviceProviderAdapter(params DeviceProviderParams) ports.LocationProvider {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &DeviceProviderAdapter{
		timeout: timeout,
		clock:   clock,
	}
}

type devicePositionResult struct {
	position ports.DevicePosition
	err      error
}

// Locate asks the device capability for a fix. Absence, denial and timeout all
// report LocationUnavailable.
func (p *DeviceProviderAdapter) Locate(ctx context.Context, req ports.LocationRequest) (*ports.LocationFix, error) {
	if req.Device == nil {
		return nil, errors.NewLocationUnavailableError("device geolocation not available", nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan devicePositionResult, 1)
	go func() {
		pos, err := req.Device.CurrentPosition(ctx)
		results <- devicePositionResult{position: pos, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			return nil, errors.NewLocationUnavailableError("device geolocation failed", res.err)
		}
		return &ports.LocationFix{
			Latitude:  res.position.Latitude,
			Longitude: res.position.Longitude,
			Source:    ports.LocationSourceDevice,
		}, nil
	case <-p.clock.After(p.timeout):
		return nil, errors.NewLocationUnavailableError("device geolocation timed out", context.DeadlineExceeded)
	case <-ctx.Done():
		return nil, errors.NewLocationUnavailableError("device geolocation cancelled", ctx.Err())
	}
}

// GetProviderName returns the name of this location provider
func (p *DeviceProviderAdapter) GetProviderName() string {
	return "device"
}

// ReportedDevicePosition is a device fix reported by the client with its request.
// A nil field or Denied means the client could not provide a position.
type ReportedDevicePosition struct {
	Latitude  *float64
	Longitude *float64
	Denied    bool
}

// CurrentPosition implements ports.DeviceGeolocation
func (d ReportedDevicePosition) CurrentPosition(ctx context.Context) (ports.DevicePosition, error) {
	if d.Denied {
		return ports.DevicePosition{}, errors.NewLocationUnavailableError("device geolocation permission denied", nil)
	}
	if d.Latitude == nil || d.Longitude == nil {
		return ports.DevicePosition{}, errors.NewLocationUnavailableError("device reported no position", nil)
	}
	return ports.DevicePosition{Latitude: *d.Latitude, Longitude: *d.Longitude}, nil
}
