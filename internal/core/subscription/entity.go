package subscription

import (
	"strings"
	"time"

	"floodaware.app/internal/core/location"
	"floodaware.app/pkg/errors"
	"floodaware.app/pkg/validation"
)

// Messages returned to clients by the alert backend
const (
	MessageSubscribed         = "Subscribed to flood alerts successfully"
	MessageUnsubscribed       = "Unsubscribed from flood alerts successfully"
	ErrorAlreadySubscribed    = "Email already subscribed"
	MessageSubscriptionFailed = "Subscription failed. Please try again."
)

// Subscription is an alert subscription owned by the backend
type Subscription struct {
	ID          uint
	Email       string
	Coordinates *location.Coordinates
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Result is the backend's status payload, passed through to callers unchanged
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Status is the subscription indicator for one email
type Status struct {
	Subscribed bool `json:"subscribed"`
}

// NormalizeEmail trims and lower-cases an address. Status is keyed by email, so every
// entry point normalizes the same way.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if !validation.IsNotEmpty(email) {
		return errors.NewValidationError("email is required")
	}
	if !validation.IsValidEmail(email) {
		return errors.NewValidationError("invalid email format")
	}
	return nil
}

// validateSubscribe checks the target location first: selecting one is mandatory
func validateSubscribe(email string, coords *location.Coordinates) error {
	if coords == nil {
		return errors.NewValidationError("a target location must be selected before subscribing")
	}
	return validateEmail(email)
}
