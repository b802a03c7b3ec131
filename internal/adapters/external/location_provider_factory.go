package external

import (
	"time"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// Location provider names accepted in the configured order
const (
	LocationProviderDevice = "device"
	LocationProviderIPInfo = "ipinfo"
	LocationProviderIPAPI  = "ipapi"
)

// LocationProvidersConfig holds configuration for building the location chain
type LocationProvidersConfig struct {
	ProviderOrder []string
	DeviceTimeout time.Duration
	IPInfoToken   string
	IPInfoURL     string
	IPAPIURL      string
	Client        HTTPClient
	Clock         clockwork.Clock
	EnableLogging bool
	Logger        ports.Logger
}

// BuildLocationProviders creates location providers in the configured order.
// Unknown names are a configuration error; the chain order itself is data.
func BuildLocationProviders(config LocationProvidersConfig) ([]ports.LocationProvider, error) {
	available := createLocationProviderMap(config)

	providers := make([]ports.LocationProvider, 0, len(config.ProviderOrder))
	seen := make(map[string]bool, len(config.ProviderOrder))
	for _, name := range config.ProviderOrder {
		provider, exists := available[name]
		if !exists {
			return nil, errors.NewConfigurationError("unknown location provider: "+name, nil)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		if config.EnableLogging && config.Logger != nil {
			provider = NewLocationProviderLoggingDecorator(provider, config.Logger, config.Clock)
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, errors.NewConfigurationError("no location providers configured", nil)
	}
	return providers, nil
}

func createLocationProviderMap(config LocationProvidersConfig) map[string]ports.LocationProvider {
	return map[string]ports.LocationProvider{
		LocationProviderDevice: NewDeviceProviderAdapter(DeviceProviderParams{
			Timeout: config.DeviceTimeout,
			Clock:   config.Clock,
		}),
		LocationProviderIPInfo: NewIPInfoProviderAdapter(IPInfoProviderParams{
			Token:   config.IPInfoToken,
			BaseURL: config.IPInfoURL,
			Client:  config.Client,
			Logger:  config.Logger,
		}),
		LocationProviderIPAPI: NewIPAPIProviderAdapter(IPAPIProviderParams{
			BaseURL: config.IPAPIURL,
			Client:  config.Client,
			Logger:  config.Logger,
		}),
	}
}
