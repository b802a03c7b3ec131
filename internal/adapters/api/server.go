// Package api provides the HTTP adapter of the flood engine.
// Handlers translate requests into use case calls and map typed errors to status codes.
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"floodaware.app/internal/core/alert"
	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/route"
	"floodaware.app/internal/core/subscription"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Use case interfaces that the HTTP adapter depends on
type LocationResolver interface {
	Resolve(ctx context.Context, req ports.LocationRequest) location.Resolution
}

type AlertReporter interface {
	Report(ctx context.Context, req ports.LocationRequest) (*alert.Report, error)
}

type RoutePlanner interface {
	Plan(ctx context.Context, req route.PlanRequest) (*route.Assessment, error)
	Select(ctx context.Context, sessionID, destinationKey string) (*route.Destination, error)
	ClearSelection(ctx context.Context, sessionID string) error
}

type SubscriptionCoordinator interface {
	Subscribe(ctx context.Context, email string, coords *location.Coordinates) (*subscription.Result, error)
	Unsubscribe(ctx context.Context, email string) (*subscription.Result, error)
	CheckStatus(ctx context.Context, email string) (*subscription.Status, error)
	RefreshAfterEmailChange(ctx context.Context, previousEmail, newEmail string) (*subscription.Status, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	Locations     LocationResolver
	Alerts        AlertReporter
	Routes        RoutePlanner
	Subscriptions SubscriptionCoordinator
	Health        ports.SystemHealthChecker
	Logger        ports.Logger
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Locations == nil {
		return errors.NewValidationError("location resolver is required")
	}
	if opts.Alerts == nil {
		return errors.NewValidationError("alert reporter is required")
	}
	if opts.Routes == nil {
		return errors.NewValidationError("route planner is required")
	}
	if opts.Subscriptions == nil {
		return errors.NewValidationError("subscription coordinator is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// HTTPServerAdapter implements the engine's HTTP API using Gin
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	locations     LocationResolver
	alerts        AlertReporter
	routes        RoutePlanner
	subscriptions SubscriptionCoordinator
	health        ports.SystemHealthChecker
	logger        ports.Logger
	gatherer      prometheus.Gatherer
}

func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, errors.NewConfigurationError("failed to register request validators", err)
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Config.ShutdownTimeout <= 0 {
		opts.Config.ShutdownTimeout = 10 * time.Second
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		locations:     opts.Locations,
		alerts:        opts.Alerts,
		routes:        opts.Routes,
		subscriptions: opts.Subscriptions,
		health:        opts.Health,
		logger:        opts.Logger,
		gatherer:      opts.Gatherer,
	}

	server.setupRoutes()
	return server, nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/location", s.getLocation)
		api.GET("/alerts", s.getAlerts)
		api.GET("/destinations", s.listDestinations)
		api.POST("/routes", s.planRoute)
		api.PUT("/routes/selection", s.selectDestination)
		api.DELETE("/routes/selection", s.clearSelection)
		api.POST("/subscribe", s.subscribe)
		api.DELETE("/unsubscribe", s.unsubscribe)
		api.POST("/subscription/status", s.subscriptionStatus)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	if s.health == nil {
		c.JSON(http.StatusOK, gin.H{"status": ports.HealthStatusHealthy})
		return
	}

	results := s.health.CheckAll(c.Request.Context())
	overall := ports.OverallHealth(results)

	code := http.StatusOK
	if overall == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": overall, "components": results})
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration", time.Since(start)))
	}
}
