package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// SubscriptionBackendClientAdapter implements SubscriptionBackend over the alert backend's HTTP API
type SubscriptionBackendClientAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// SubscriptionBackendClientParams holds parameters for creating the backend client
type SubscriptionBackendClientParams struct {
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// NewSubscriptionBackendClientAdapter creates a new alert backend client
func NewSubscriptionBackendClientAdapter(params SubscriptionBackendClientParams) (ports.SubscriptionBackend, error) {
	if strings.TrimSpace(params.BaseURL) == "" {
		return nil, errors.NewConfigurationError("subscription backend URL is required", nil)
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &SubscriptionBackendClientAdapter{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}, nil
}

type emailRequest struct {
	Email string `json:"email"`
}

// Subscribe posts the subscription request
func (c *SubscriptionBackendClientAdapter) Subscribe(ctx context.Context, req ports.SubscribeRequest) (*ports.BackendResult, error) {
	return c.call(ctx, http.MethodPost, "/subscribe", req)
}

// Unsubscribe sends DELETE /unsubscribe with the email in the body
func (c *SubscriptionBackendClientAdapter) Unsubscribe(ctx context.Context, email string) (*ports.BackendResult, error) {
	return c.call(ctx, http.MethodDelete, "/unsubscribe", emailRequest{Email: email})
}

// CheckSubscription posts the email to the status endpoint
func (c *SubscriptionBackendClientAdapter) CheckSubscription(ctx context.Context, email string) (*ports.BackendResult, error) {
	return c.call(ctx, http.MethodPost, "/check-subscription", emailRequest{Email: email})
}

// call sends a JSON request. A 4xx response with a status payload is returned as a
// result so the backend's own message reaches the caller; anything unreadable is a
// NetworkError.
func (c *SubscriptionBackendClientAdapter) call(ctx context.Context, method, path string, body interface{}) (*ports.BackendResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.NewNetworkError("failed to build subscription backend request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError("failed to call subscription backend "+path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close subscription backend response body", ports.F("error", closeErr))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError("failed to read subscription backend response", err)
	}

	var result ports.BackendResult
	decodeErr := json.Unmarshal(raw, &result)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if decodeErr != nil {
			return nil, errors.NewNetworkError("malformed subscription backend response", decodeErr)
		}
		return &result, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && decodeErr == nil:
		c.logger.Debug("Subscription backend rejected request",
			ports.F("path", path),
			ports.F("status", resp.StatusCode),
			ports.F("error", result.Error))
		result.Success = false
		return &result, nil
	default:
		return nil, errors.NewNetworkError(fmt.Sprintf("subscription backend %s returned status %d", path, resp.StatusCode), decodeErr)
	}
}
