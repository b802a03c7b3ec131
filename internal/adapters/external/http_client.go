// Package external provides adapters for external services: location lookups, weather
// providers, the alert subscription backend and the session store.
package external

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BreakerClient sends requests through a circuit breaker. It never retries:
// a failed call is reported once and the next call is up to the caller.
type BreakerClient struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	logger  ports.Logger
}

// BreakerClientParams holds parameters for creating a breaker client
type BreakerClientParams struct {
	Name string
	// Timeout of a single request. Zero keeps the transport default.
	Timeout time.Duration
	// MaxConsecutiveFailures trips the breaker. Defaults to 5.
	MaxConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open. Defaults to 30s.
	OpenTimeout time.Duration
	Logger      ports.Logger
}

// NewBreakerClient creates an HTTP client guarded by a circuit breaker
func NewBreakerClient(params BreakerClientParams) *BreakerClient {
	maxFailures := params.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := params.OpenTimeout
	if openTimeout == 0 {
		openTimeout = 30 * time.Second
	}

	c := &BreakerClient{
		client: &http.Client{Timeout: params.Timeout},
		logger: params.Logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        params.Name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if c.logger != nil {
				c.logger.Warn("Circuit breaker state changed",
					ports.F("breaker", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})
	return c
}

// Do executes req. Transport failures, 5xx responses and an open breaker are
// returned as NetworkError; any other response is returned for the caller to inspect.
func (c *BreakerClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= http.StatusInternalServerError {
			_ = r.Body.Close()
			return nil, fmt.Errorf("upstream returned status %d", r.StatusCode)
		}
		return r, nil
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewNetworkError("circuit breaker open for "+c.breaker.Name(), err)
		}
		return nil, errors.NewNetworkError("request to "+req.URL.Host+" failed", err)
	}
	return resp, nil
}

// State reports the breaker state
func (c *BreakerClient) State() gobreaker.State {
	return c.breaker.State()
}
