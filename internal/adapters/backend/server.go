// Package backend provides the HTTP surface of the alert subscription backend.
// Every response carries the success/message/error payload the engine passes through.
package backend

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/subscription"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// SubscriptionRegistry is the use case the backend serves
type SubscriptionRegistry interface {
	Subscribe(ctx context.Context, email string, coords *location.Coordinates) (*subscription.Result, error)
	Unsubscribe(ctx context.Context, email string) (*subscription.Result, error)
	Check(ctx context.Context, email string) (*subscription.Result, error)
	ActiveCount(ctx context.Context) (int64, error)
}

// ServerOptions represents options for creating the backend HTTP server
type ServerOptions struct {
	Port            int
	ShutdownTimeout time.Duration
	Registry        SubscriptionRegistry
	Health          ports.HealthChecker
	Logger          ports.Logger
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Registry == nil {
		return errors.NewValidationError("subscription registry is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// HTTPServerAdapter serves the alert backend API using Gin
type HTTPServerAdapter struct {
	router   *gin.Engine
	opts     ServerOptions
	registry SubscriptionRegistry
	logger   ports.Logger
}

func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend server options: %w", err)
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &HTTPServerAdapter{
		router:   gin.New(),
		opts:     opts,
		registry: opts.Registry,
		logger:   opts.Logger,
	}
	s.router.Use(gin.Recovery())

	s.router.POST("/subscribe", s.subscribe)
	s.router.DELETE("/unsubscribe", s.unsubscribe)
	s.router.POST("/check-subscription", s.checkSubscription)
	s.router.GET("/health", s.health)
	return s, nil
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.opts.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting alert backend", ports.F("port", s.opts.Port))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type subscribeRequest struct {
	Email     string   `json:"email" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required"`
}

func (s *HTTPServerAdapter) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, errors.NewValidationError("email is required"))
		return
	}

	var coords *location.Coordinates
	if req.Latitude != nil && req.Longitude != nil {
		var err error
		if coords, err = location.NewCoordinates(*req.Latitude, *req.Longitude); err != nil {
			s.reject(c, errors.NewValidationError(err.Error()))
			return
		}
	}

	result, err := s.registry.Subscribe(c.Request.Context(), req.Email, coords)
	if err != nil {
		s.reject(c, err)
		return
	}
	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *HTTPServerAdapter) unsubscribe(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, errors.NewValidationError("email is required"))
		return
	}

	result, err := s.registry.Unsubscribe(c.Request.Context(), req.Email)
	if err != nil {
		s.reject(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *HTTPServerAdapter) checkSubscription(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, errors.NewValidationError("email is required"))
		return
	}

	result, err := s.registry.Check(c.Request.Context(), req.Email)
	if err != nil {
		s.reject(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *HTTPServerAdapter) health(c *gin.Context) {
	response := gin.H{"status": ports.HealthStatusHealthy}
	code := http.StatusOK

	if s.opts.Health != nil {
		status := s.opts.Health.Check(c.Request.Context())
		response["status"] = status.Status
		response["database"] = status
		if status.Status == ports.HealthStatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
	}
	if count, err := s.registry.ActiveCount(c.Request.Context()); err == nil {
		response["active_subscriptions"] = count
	}
	c.JSON(code, response)
}

// reject writes a failed payload. Validation errors keep their message; storage
// failures are logged and replaced with a generic one.
func (s *HTTPServerAdapter) reject(c *gin.Context, err error) {
	switch errors.TypeOf(err) {
	case errors.ValidationError:
		c.JSON(http.StatusBadRequest, subscription.Result{Error: messageOf(err)})
	case errors.AlreadyExistsError:
		c.JSON(http.StatusConflict, subscription.Result{Error: subscription.ErrorAlreadySubscribed})
	default:
		s.logger.Error("Subscription request failed",
			ports.F("path", c.FullPath()),
			ports.F("error", err))
		c.JSON(http.StatusInternalServerError, subscription.Result{Error: subscription.MessageSubscriptionFailed})
	}
}

func messageOf(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
