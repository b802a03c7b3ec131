package ports

import "context"

// SubscribeRequest is the body of POST /subscribe on the alert backend
type SubscribeRequest struct {
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BackendResult is the alert backend's status payload
type BackendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubscriptionBackend defines the contract of the remote alert subscription backend
type SubscriptionBackend interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (*BackendResult, error)
	Unsubscribe(ctx context.Context, email string) (*BackendResult, error)
	CheckSubscription(ctx context.Context, email string) (*BackendResult, error)
}
