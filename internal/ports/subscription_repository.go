package ports

import (
	"context"
	"time"
)

// SubscriptionData represents subscription data for persistence on the alert backend
type SubscriptionData struct {
	ID        uint
	Email     string
	Latitude  float64
	Longitude float64
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionRepository defines the contract for subscription data persistence
type SubscriptionRepository interface {
	Save(ctx context.Context, sub *SubscriptionData) error
	FindByEmail(ctx context.Context, email string) (*SubscriptionData, error)
	Update(ctx context.Context, sub *SubscriptionData) error
	CountActive(ctx context.Context) (int64, error)
}
