package infrastructure

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"floodaware.app/internal/ports"
)

const (
	StatusHealthy   = ports.HealthStatusHealthy
	StatusDegraded  = ports.HealthStatusDegraded
	StatusUnhealthy = ports.HealthStatusUnhealthy
)

func unhealthy(status ports.HealthStatus, reason string) ports.HealthStatus {
	status.Status = StatusUnhealthy
	status.Error = reason
	return status
}

// Pinger is implemented by stores that can verify their connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthChecker reports the session store. A nil pinger means an in-process store.
type StoreHealthChecker struct {
	storeType string
	pinger    Pinger
	stats     ports.CacheMetrics
}

func NewStoreHealthChecker(storeType string, pinger Pinger, stats ports.CacheMetrics) *StoreHealthChecker {
	return &StoreHealthChecker{storeType: storeType, pinger: pinger, stats: stats}
}

func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Details:   map[string]interface{}{"type": s.storeType},
	}

	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			return unhealthy(status, err.Error())
		}
	}
	if s.stats != nil {
		stats := s.stats.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hit_ratio"] = stats.HitRatio
	}

	status.Status = StatusHealthy
	return status
}

// BreakerState is implemented by clients guarded by a circuit breaker
type BreakerState interface {
	State() gobreaker.State
}

// BreakerHealthChecker reports an upstream as degraded while its breaker is not closed
type BreakerHealthChecker struct {
	component string
	breaker   BreakerState
}

func NewBreakerHealthChecker(component string, breaker BreakerState) *BreakerHealthChecker {
	return &BreakerHealthChecker{component: component, breaker: breaker}
}

func (b *BreakerHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: b.component}
	if b.breaker == nil {
		return unhealthy(status, "client is not configured")
	}

	state := b.breaker.State()
	status.Details = map[string]interface{}{"breaker": state.String()}
	if state == gobreaker.StateClosed {
		status.Status = StatusHealthy
	} else {
		status.Status = StatusDegraded
	}
	return status
}

// BackendHealthChecker probes the alert backend's /health endpoint
type BackendHealthChecker struct {
	url    string
	client *http.Client
}

func NewBackendHealthChecker(baseURL string, timeout time.Duration) *BackendHealthChecker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &BackendHealthChecker{
		url:    strings.TrimRight(baseURL, "/") + "/health",
		client: &http.Client{Timeout: timeout},
	}
}

func (b *BackendHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "alertBackend",
		Details:   map[string]interface{}{"url": b.url},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return unhealthy(status, err.Error())
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return unhealthy(status, err.Error())
	}
	_ = resp.Body.Close()

	status.Details["status_code"] = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return unhealthy(status, "backend returned "+resp.Status)
	}
	status.Status = StatusHealthy
	return status
}
