package ports

import (
	"context"
	"time"
)

// Selection is the destination a session currently has selected
type Selection struct {
	Key       string  `json:"key,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SelectionStore keeps the current destination selection per session.
// Get returns a NotFound error when the session has no selection.
type SelectionStore interface {
	Get(ctx context.Context, sessionID string) (*Selection, error)
	Set(ctx context.Context, sessionID string, selection Selection, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
