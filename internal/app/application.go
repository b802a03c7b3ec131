package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"floodaware.app/internal/adapters/api"
	"floodaware.app/internal/adapters/infrastructure"
	"floodaware.app/internal/config"
	"floodaware.app/internal/core/alert"
	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/route"
	"floodaware.app/internal/core/subscription"
	"floodaware.app/internal/core/weather"
	"floodaware.app/internal/ports"
)

// Application is the flood evaluation engine process
type Application struct {
	config *config.Config
	deps   *DependencyContainer
	ports  *ports.ApplicationPorts

	// Use Cases
	locationUseCase *location.UseCase
	weatherUseCase  *weather.UseCase
	alertUseCase    *alert.UseCase
	routeUseCase    *route.UseCase
	coordinator     *subscription.Coordinator

	// Adapters
	server *api.HTTPServerAdapter
}

// NewApplication loads configuration from the environment and wires the engine
func NewApplication(logger *slog.Logger) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(DependencyConfig{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies wires use cases and adapters over a prepared container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}
	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}
	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")
	p := a.ports

	var err error
	a.locationUseCase, err = location.NewUseCase(location.UseCaseDependencies{
		Providers: p.LocationProviders,
		Logger:    p.Logger,
		Metrics:   p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}

	a.weatherUseCase, err = weather.NewUseCase(weather.UseCaseDependencies{
		Provider: p.WeatherProvider,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}

	a.alertUseCase, err = alert.NewUseCase(alert.UseCaseDependencies{
		Resolver: a.locationUseCase,
		Fetcher:  a.weatherUseCase,
		Config:   p.ConfigProvider,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create alert use case: %w", err)
	}

	a.routeUseCase, err = route.NewUseCase(route.UseCaseDependencies{
		Resolver:       a.locationUseCase,
		Fetcher:        a.weatherUseCase,
		SelectionStore: p.SelectionStore,
		Config:         p.ConfigProvider,
		Logger:         p.Logger,
		Metrics:        p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create route use case: %w", err)
	}

	a.coordinator, err = subscription.NewCoordinator(subscription.CoordinatorDependencies{
		Backend: p.SubscriptionBackend,
		Logger:  p.Logger,
		Metrics: p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create subscription coordinator: %w", err)
	}

	slog.Info("Use cases initialized successfully",
		"rainfall_mm_1h", a.alertUseCase.Thresholds().RainfallMm1h)
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	server, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:        api.ServerConfig{Port: a.ports.ConfigProvider.GetServerConfig().Port},
		Locations:     a.locationUseCase,
		Alerts:        a.alertUseCase,
		Routes:        a.routeUseCase,
		Subscriptions: a.coordinator,
		Health:        infrastructure.NewSystemHealthChecker(a.ports.HealthCheckers...),
		Logger:        a.ports.Logger,
		Gatherer:      a.deps.Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.server = server

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves the engine API until ctx is cancelled
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting flood evaluation engine...")
	return a.server.Start(ctx)
}

// Shutdown releases the store connection and log files
func (a *Application) Shutdown() error {
	slog.Info("Shutting down application...")
	if err := a.deps.Cleanup(); err != nil {
		return fmt.Errorf("release resources: %w", err)
	}
	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.server.GetRouter()
}
