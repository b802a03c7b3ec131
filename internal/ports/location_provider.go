package ports

import "context"

// Location source tags reported by providers
const (
	LocationSourceDevice        = "device"
	LocationSourceIPGeolocation = "ip_geolocation"
)

// DevicePosition is a position reported by a device-native geolocation capability
type DevicePosition struct {
	Latitude  float64
	Longitude float64
}

// DeviceGeolocation is the device-native geolocation capability of the current client.
// Implementations return an error on permission denial or when no fix is available.
type DeviceGeolocation interface {
	CurrentPosition(ctx context.Context) (DevicePosition, error)
}

// LocationRequest carries per-request inputs available to location providers
type LocationRequest struct {
	// ClientIP is the address to geolocate; empty means the caller's own egress address
	ClientIP string
	// Device is nil when the client has no geolocation capability
	Device DeviceGeolocation
}

// LocationFix is a successful provider answer
type LocationFix struct {
	Latitude  float64
	Longitude float64
	City      string
	Region    string
	Source    string
}

// LocationProvider defines the contract for a single step of the location fallback chain
type LocationProvider interface {
	Locate(ctx context.Context, req LocationRequest) (*LocationFix, error)
	GetProviderName() string
}
