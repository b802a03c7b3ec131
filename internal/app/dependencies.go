package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"floodaware.app/internal/adapters/external"
	"floodaware.app/internal/adapters/infrastructure"
	"floodaware.app/internal/config"
	"floodaware.app/internal/ports"
)

// DependencyContainer builds the engine's adapters from configuration
type DependencyContainer struct {
	config   *config.Config
	clock    clockwork.Clock
	base     *slog.Logger
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts
	closers  []io.Closer
}

// DependencyConfig holds the process-level inputs of the container
type DependencyConfig struct {
	Config *config.Config
	Logger *slog.Logger
	// Clock defaults to the real clock
	Clock clockwork.Clock
	// Registry defaults to a fresh registry with Go and process collectors
	Registry *prometheus.Registry
}

func NewDependencyContainer(depConfig DependencyConfig) (*DependencyContainer, error) {
	if depConfig.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	c := &DependencyContainer{
		config:   depConfig.Config,
		clock:    depConfig.Clock,
		base:     depConfig.Logger,
		registry: depConfig.Registry,
	}
	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.base == nil {
		c.base = slog.Default()
	}
	if c.registry == nil {
		c.registry = prometheus.NewRegistry()
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if err := c.initializePorts(); err != nil {
		_ = c.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}
	return c, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	logger := infrastructure.NewSlogLoggerAdapter(c.base)

	metrics, err := infrastructure.NewPrometheusMetricsCollector(c.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	providerLogger := c.providerLogger(logger)

	locationProviders, lookupClient, err := c.buildLocationChain(configProvider, providerLogger)
	if err != nil {
		return err
	}

	weatherProvider, weatherClient := c.buildWeatherProvider(providerLogger)

	store, storeType, err := c.buildStore(configProvider)
	if err != nil {
		return err
	}
	selectionStore, err := external.NewSelectionStoreAdapter(store)
	if err != nil {
		return fmt.Errorf("create selection store: %w", err)
	}

	cacheMetrics, _ := store.(ports.CacheMetrics)
	if cacheMetrics != nil {
		if err := infrastructure.RegisterStoreStats(c.registry, storeType, cacheMetrics); err != nil {
			return fmt.Errorf("register store metrics: %w", err)
		}
	}

	subCfg := configProvider.GetSubscriptionConfig()
	backend, err := external.NewSubscriptionBackendClientAdapter(external.SubscriptionBackendClientParams{
		BaseURL: subCfg.BackendURL,
		Client:  &http.Client{Timeout: subCfg.Timeout},
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create subscription backend client: %w", err)
	}

	pinger, _ := store.(infrastructure.Pinger)
	healthCheckers := []ports.HealthChecker{
		infrastructure.NewStoreHealthChecker(storeType, pinger, cacheMetrics),
		infrastructure.NewBreakerHealthChecker("openweathermap", weatherClient),
		infrastructure.NewBreakerHealthChecker("ipGeolocation", lookupClient),
		infrastructure.NewBackendHealthChecker(subCfg.BackendURL, 3*time.Second),
	}

	c.ports = &ports.ApplicationPorts{
		LocationProviders:   locationProviders,
		WeatherProvider:     weatherProvider,
		SelectionStore:      selectionStore,
		CacheMetrics:        cacheMetrics,
		SubscriptionBackend: backend,
		ConfigProvider:      configProvider,
		Logger:              logger,
		Metrics:             metrics,
		HealthCheckers:      healthCheckers,
	}

	slog.Info("Ports initialized successfully", "store", storeType, "providers", len(locationProviders))
	return nil
}

// providerLogger adds the file log of provider calls when it is enabled.
// A file that cannot be opened falls back to the process logger.
func (c *DependencyContainer) providerLogger(logger ports.Logger) ports.Logger {
	locCfg := c.config.Location
	if !locCfg.EnableLogging || locCfg.LogFilePath == "" {
		return logger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(locCfg.LogFilePath, c.clock)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return logger
	}
	c.closers = append(c.closers, fileLogger)
	slog.Info("Provider file logging enabled", "path", locCfg.LogFilePath)
	return infrastructure.NewFanoutLogger(logger, fileLogger)
}

func (c *DependencyContainer) buildLocationChain(cfg ports.ConfigProvider, logger ports.Logger) ([]ports.LocationProvider, *external.BreakerClient, error) {
	locCfg := c.config.Location

	lookupClient := external.NewBreakerClient(external.BreakerClientParams{
		Name:    "ip-geolocation",
		Timeout: time.Duration(locCfg.LookupTimeoutSeconds) * time.Second,
		Logger:  logger,
	})

	providers, err := external.BuildLocationProviders(external.LocationProvidersConfig{
		ProviderOrder: cfg.GetLocationConfig().ProviderOrder,
		DeviceTimeout: cfg.GetLocationConfig().DeviceTimeout,
		IPInfoToken:   locCfg.IPInfoToken,
		IPInfoURL:     locCfg.IPInfoBaseURL,
		IPAPIURL:      locCfg.IPAPIBaseURL,
		Client:        lookupClient,
		Clock:         c.clock,
		EnableLogging: locCfg.EnableLogging,
		Logger:        logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build location providers: %w", err)
	}
	return providers, lookupClient, nil
}

func (c *DependencyContainer) buildWeatherProvider(logger ports.Logger) (ports.WeatherProvider, *external.BreakerClient) {
	wCfg := c.config.Weather

	client := external.NewBreakerClient(external.BreakerClientParams{
		Name:                   "openweathermap",
		Timeout:                time.Duration(wCfg.TimeoutSeconds) * time.Second,
		MaxConsecutiveFailures: wCfg.BreakerMaxFailures,
		OpenTimeout:            time.Duration(wCfg.BreakerOpenSeconds) * time.Second,
		Logger:                 logger,
	})

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  wCfg.OpenWeatherMapKey,
		BaseURL: wCfg.OpenWeatherMapBaseURL,
		Client:  client,
		Logger:  logger,
	})
	if wCfg.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, logger, c.clock)
		slog.Info("Weather provider logging enabled")
	}
	return provider, client
}

func (c *DependencyContainer) buildStore(cfg ports.ConfigProvider) (ports.CacheProvider, string, error) {
	storeCfg := cfg.GetStoreConfig()

	store, err := external.NewCacheProviderFactory(c.clock).CreateCacheProvider(storeCfg)
	if err != nil {
		return nil, "", fmt.Errorf("create session store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	storeType := storeCfg.Type
	if storeType == "" {
		storeType = external.StoreTypeMemory
	}
	slog.Info("Session store initialized", "type", storeType, "redis_addr", storeCfg.Redis.Addr)
	return store, storeType, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the registry backing /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup closes the store connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
