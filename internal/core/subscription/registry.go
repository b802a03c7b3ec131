package subscription

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// Registry is the alert backend's side of the subscription contract.
// Subscriptions are keyed by email; unsubscribing deactivates rather than deletes.
type Registry struct {
	repo   ports.SubscriptionRepository
	logger ports.Logger
	clock  clockwork.Clock
}

type RegistryDependencies struct {
	Repository ports.SubscriptionRepository
	Logger     ports.Logger
	Clock      clockwork.Clock
}

func NewRegistry(deps RegistryDependencies) (*Registry, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &Registry{
		repo:   deps.Repository,
		logger: deps.Logger,
		clock:  deps.Clock,
	}, nil
}

// Subscribe activates alerts for email at coords. An email that is already active is
// reported as a failed result, not an error.
func (r *Registry) Subscribe(ctx context.Context, email string, coords *location.Coordinates) (*Result, error) {
	email = NormalizeEmail(email)
	if err := validateSubscribe(email, coords); err != nil {
		return nil, err
	}

	existing, err := r.repo.FindByEmail(ctx, email)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check existing subscription: %w", err)
	}

	now := r.clock.Now()
	if existing != nil {
		if existing.Active {
			r.logger.Debug("Subscription already active", ports.F("email", email))
			return &Result{Success: false, Error: ErrorAlreadySubscribed}, nil
		}

		existing.Latitude = coords.Latitude
		existing.Longitude = coords.Longitude
		existing.Active = true
		existing.UpdatedAt = now
		if err := r.repo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("reactivate subscription: %w", err)
		}

		r.logger.Info("Subscription reactivated",
			ports.F("email", email),
			ports.F("subscription_id", existing.ID))
		return &Result{Success: true, Message: MessageSubscribed}, nil
	}

	data := &ports.SubscriptionData{
		Email:     email,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.repo.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save subscription: %w", err)
	}

	r.logger.Info("Subscription created",
		ports.F("email", email),
		ports.F("subscription_id", data.ID))
	return &Result{Success: true, Message: MessageSubscribed}, nil
}

// Unsubscribe deactivates the subscription for email. Unknown and already inactive
// emails succeed as well.
func (r *Registry) Unsubscribe(ctx context.Context, email string) (*Result, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	existing, err := r.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &Result{Success: true, Message: MessageUnsubscribed}, nil
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}

	if existing.Active {
		existing.Active = false
		existing.UpdatedAt = r.clock.Now()
		if err := r.repo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("deactivate subscription: %w", err)
		}
		r.logger.Info("Subscription deactivated", ports.F("email", email))
	}

	return &Result{Success: true, Message: MessageUnsubscribed}, nil
}

// Check reports whether email has an active subscription
func (r *Registry) Check(ctx context.Context, email string) (*Result, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	existing, err := r.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &Result{Success: false}, nil
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return &Result{Success: existing.Active}, nil
}

// ActiveCount returns the number of active subscriptions
func (r *Registry) ActiveCount(ctx context.Context) (int64, error) {
	count, err := r.repo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("count active subscriptions: %w", err)
	}
	return count, nil
}
