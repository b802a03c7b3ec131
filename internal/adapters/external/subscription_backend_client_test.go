package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

type recordedCall struct {
	method string
	path   string
	body   map[string]interface{}
}

func newBackendServer(t *testing.T, status int, response string, calls *[]recordedCall) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		*calls = append(*calls, recordedCall{method: r.Method, path: r.URL.Path, body: body})
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func newBackendClient(t *testing.T, server *httptest.Server) ports.SubscriptionBackend {
	t.Helper()
	client, err := NewSubscriptionBackendClientAdapter(SubscriptionBackendClientParams{
		BaseURL: server.URL + "/",
		Client:  server.Client(),
		Logger:  setupLoggerMock(t),
	})
	require.NoError(t, err)
	return client
}

func TestSubscriptionBackendClient_RequiresURL(t *testing.T) {
	client, err := NewSubscriptionBackendClientAdapter(SubscriptionBackendClientParams{BaseURL: "  "})
	assert.Nil(t, client)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestSubscriptionBackendClient_Endpoints(t *testing.T) {
	var calls []recordedCall
	server := newBackendServer(t, http.StatusOK, `{"success":true,"message":"ok"}`, &calls)
	client := newBackendClient(t, server)
	ctx := context.Background()

	result, err := client.Subscribe(ctx, ports.SubscribeRequest{Email: "ada@example.com", Latitude: 6.52, Longitude: 3.38})
	require.NoError(t, err)
	assert.Equal(t, &ports.BackendResult{Success: true, Message: "ok"}, result)

	_, err = client.Unsubscribe(ctx, "ada@example.com")
	require.NoError(t, err)

	_, err = client.CheckSubscription(ctx, "ada@example.com")
	require.NoError(t, err)

	require.Len(t, calls, 3)
	assert.Equal(t, recordedCall{
		method: http.MethodPost,
		path:   "/subscribe",
		body:   map[string]interface{}{"email": "ada@example.com", "latitude": 6.52, "longitude": 3.38},
	}, calls[0])
	assert.Equal(t, recordedCall{
		method: http.MethodDelete,
		path:   "/unsubscribe",
		body:   map[string]interface{}{"email": "ada@example.com"},
	}, calls[1])
	assert.Equal(t, recordedCall{
		method: http.MethodPost,
		path:   "/check-subscription",
		body:   map[string]interface{}{"email": "ada@example.com"},
	}, calls[2])
}

func TestSubscriptionBackendClient_ClientErrorPayload(t *testing.T) {
	var calls []recordedCall
	server := newBackendServer(t, http.StatusConflict, `{"success":true,"error":"Email already subscribed"}`, &calls)
	client := newBackendClient(t, server)

	result, err := client.Subscribe(context.Background(), ports.SubscribeRequest{Email: "ada@example.com"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Email already subscribed", result.Error)
}

func TestSubscriptionBackendClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"ServerError", http.StatusInternalServerError, `{"success":false,"error":"boom"}`},
		{"MalformedSuccess", http.StatusOK, `<html>`},
		{"ClientErrorWithoutPayload", http.StatusNotFound, `not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			server := newBackendServer(t, tt.status, tt.body, &calls)
			client := newBackendClient(t, server)

			result, err := client.CheckSubscription(context.Background(), "ada@example.com")
			assert.Nil(t, result)
			assert.True(t, errors.IsNetworkError(err), "unexpected error %v", err)
		})
	}
}

func TestSubscriptionBackendClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewSubscriptionBackendClientAdapter(SubscriptionBackendClientParams{BaseURL: url, Logger: setupLoggerMock(t)})
	require.NoError(t, err)

	result, err := client.Unsubscribe(context.Background(), "ada@example.com")
	assert.Nil(t, result)
	assert.True(t, errors.IsNetworkError(err))
}
