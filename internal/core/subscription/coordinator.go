package subscription

import (
	"context"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// Coordinator manages subscribe, unsubscribe and status checks against the alert backend.
// It holds no subscription state; every status read goes to the backend.
type Coordinator struct {
	backend ports.SubscriptionBackend
	logger  ports.Logger
	metrics ports.MetricsCollector
}

type CoordinatorDependencies struct {
	Backend ports.SubscriptionBackend
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewCoordinator(deps CoordinatorDependencies) (*Coordinator, error) {
	if deps.Backend == nil {
		return nil, errors.NewValidationError("subscription backend is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &Coordinator{
		backend: deps.Backend,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// Subscribe registers email for alerts at coords. Invalid input is rejected before
// any backend call; otherwise the backend payload is returned as-is.
func (c *Coordinator) Subscribe(ctx context.Context, email string, coords *location.Coordinates) (*Result, error) {
	email = NormalizeEmail(email)
	if err := validateSubscribe(email, coords); err != nil {
		return nil, err
	}

	res, err := payload(c.backend.Subscribe(ctx, ports.SubscribeRequest{
		Email:     email,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}))
	if err != nil {
		return nil, c.fail("subscribe", email, err)
	}

	c.metrics.RecordSubscriptionCall("subscribe", res.Success)
	c.logger.Info("Subscription request completed",
		ports.F("email", email),
		ports.F("success", res.Success))
	return fromBackend(res), nil
}

// Unsubscribe removes the subscription for email. Repeating it after success is
// left to the backend, which treats it as a no-op.
func (c *Coordinator) Unsubscribe(ctx context.Context, email string) (*Result, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	res, err := payload(c.backend.Unsubscribe(ctx, email))
	if err != nil {
		return nil, c.fail("unsubscribe", email, err)
	}

	c.metrics.RecordSubscriptionCall("unsubscribe", res.Success)
	c.logger.Info("Unsubscribe request completed",
		ports.F("email", email),
		ports.F("success", res.Success))
	return fromBackend(res), nil
}

// CheckStatus queries the backend for the current subscription state of email
func (c *Coordinator) CheckStatus(ctx context.Context, email string) (*Status, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	res, err := payload(c.backend.CheckSubscription(ctx, email))
	if err != nil {
		return nil, c.fail("check", email, err)
	}

	c.metrics.RecordSubscriptionCall("check", true)
	return &Status{Subscribed: res.Success}, nil
}

// RefreshAfterEmailChange re-reads the indicator after a profile email change.
// Status is keyed by email, so the old address's state does not carry over.
func (c *Coordinator) RefreshAfterEmailChange(ctx context.Context, previousEmail, newEmail string) (*Status, error) {
	c.logger.Debug("Refreshing subscription status after email change",
		ports.F("previous_email", NormalizeEmail(previousEmail)),
		ports.F("email", NormalizeEmail(newEmail)))
	return c.CheckStatus(ctx, newEmail)
}

func (c *Coordinator) fail(operation, email string, err error) error {
	c.metrics.RecordSubscriptionCall(operation, false)
	c.logger.Error("Subscription backend call failed",
		ports.F("operation", operation),
		ports.F("email", email),
		ports.F("error", err))
	if errors.IsNetworkError(err) {
		return err
	}
	return errors.NewNetworkError("subscription backend "+operation+" failed", err)
}

func payload(res *ports.BackendResult, err error) (*ports.BackendResult, error) {
	if err == nil && res == nil {
		return nil, errors.NewNetworkError("subscription backend returned an empty payload", nil)
	}
	return res, err
}

func fromBackend(res *ports.BackendResult) *Result {
	return &Result{
		Success: res.Success,
		Message: res.Message,
		Error:   res.Error,
	}
}
