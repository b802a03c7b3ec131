package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Location
	LocationProviders []LocationProvider

	// Weather
	WeatherProvider WeatherProvider

	// Route planning
	SelectionStore SelectionStore
	CacheMetrics   CacheMetrics

	// Subscription
	SubscriptionBackend SubscriptionBackend

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	HealthCheckers []HealthChecker
}
