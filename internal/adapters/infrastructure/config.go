package infrastructure

import (
	"time"

	"floodaware.app/internal/config"
	"floodaware.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port over the loaded environment config
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{config: cfg}
}

func (c *ConfigProviderAdapter) GetLocationConfig() ports.LocationConfig {
	order := make([]string, len(c.config.Location.ProviderOrder))
	copy(order, c.config.Location.ProviderOrder)
	return ports.LocationConfig{
		DeviceTimeout: time.Duration(c.config.Location.DeviceTimeoutSeconds) * time.Second,
		ProviderOrder: order,
	}
}

func (c *ConfigProviderAdapter) GetRiskConfig() ports.RiskConfig {
	return ports.RiskConfig{
		RainfallMm1h: c.config.Thresholds.RainfallMm1h,
		WindSpeedMs:  c.config.Thresholds.WindSpeedMs,
		HumidityPct:  c.config.Thresholds.HumidityPct,
	}
}

func (c *ConfigProviderAdapter) GetRouteConfig() ports.RouteConfig {
	return ports.RouteConfig{
		SelectionTTL: time.Duration(c.config.Route.SelectionTTLMinutes) * time.Minute,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{Port: c.config.Server.Port}
}

func (c *ConfigProviderAdapter) GetSubscriptionConfig() ports.SubscriptionConfig {
	return ports.SubscriptionConfig{
		BackendURL: c.config.Subscription.BackendURL,
		Timeout:    time.Duration(c.config.Subscription.TimeoutSeconds) * time.Second,
	}
}

func (c *ConfigProviderAdapter) GetStoreConfig() ports.StoreConfig {
	redis := c.config.Store.Redis
	return ports.StoreConfig{
		Type: c.config.Store.Type,
		Redis: ports.RedisConfig{
			Addr:         redis.Addr,
			Password:     redis.Password,
			DB:           redis.DB,
			DialTimeout:  redis.DialTimeout,
			ReadTimeout:  redis.ReadTimeout,
			WriteTimeout: redis.WriteTimeout,
		},
	}
}
