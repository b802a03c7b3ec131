package external

import (
	"context"
	"encoding/json"
	"time"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

const selectionKeyPrefix = "selection:"

// SelectionStoreAdapter persists route selections as JSON in a CacheProvider
type SelectionStoreAdapter struct {
	store ports.CacheProvider
}

func NewSelectionStoreAdapter(store ports.CacheProvider) (*SelectionStoreAdapter, error) {
	if store == nil {
		return nil, errors.NewConfigurationError("cache provider is required", nil)
	}
	return &SelectionStoreAdapter{store: store}, nil
}

func (a *SelectionStoreAdapter) Get(ctx context.Context, sessionID string) (*ports.Selection, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session id is required")
	}

	raw, err := a.store.Get(ctx, selectionKeyPrefix+sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no destination selected")
		}
		return nil, err
	}

	var selection ports.Selection
	if err := json.Unmarshal(raw, &selection); err != nil {
		return nil, errors.NewNetworkError("stored selection is corrupt", err)
	}
	return &selection, nil
}

func (a *SelectionStoreAdapter) Set(ctx context.Context, sessionID string, selection ports.Selection, ttl time.Duration) error {
	if sessionID == "" {
		return errors.NewValidationError("session id is required")
	}

	raw, err := json.Marshal(selection)
	if err != nil {
		return errors.NewValidationError("selection cannot be encoded")
	}
	return a.store.Set(ctx, selectionKeyPrefix+sessionID, raw, ttl)
}

func (a *SelectionStoreAdapter) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.NewValidationError("session id is required")
	}
	return a.store.Delete(ctx, selectionKeyPrefix+sessionID)
}
