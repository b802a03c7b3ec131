package infrastructure

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"floodaware.app/internal/ports"
)

const metricsNamespace = "floodaware"

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus vectors
type PrometheusMetricsCollector struct {
	locationAttempts  *prometheus.CounterVec
	resolutions       *prometheus.CounterVec
	weatherFetches    *prometheus.CounterVec
	weatherLatency    *prometheus.HistogramVec
	classifications   *prometheus.CounterVec
	routeAssessments  *prometheus.CounterVec
	subscriptionCalls *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the engine metrics on reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) (*PrometheusMetricsCollector, error) {
	m := &PrometheusMetricsCollector{
		locationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "location_attempts_total",
			Help:      "Location provider attempts by provider and outcome.",
		}, []string{"provider", "success"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "location_resolutions_total",
			Help:      "Location resolutions by source.",
		}, []string{"source"}),
		weatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "weather_fetches_total",
			Help:      "Weather snapshot fetches by provider and outcome.",
		}, []string{"provider", "success"}),
		weatherLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "weather_fetch_duration_seconds",
			Help:      "Weather snapshot fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "risk_classifications_total",
			Help:      "Risk classifications by level.",
		}, []string{"level"}),
		routeAssessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "route_assessments_total",
			Help:      "Route assessments by render color; stale results are discarded.",
		}, []string{"color", "stale"}),
		subscriptionCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "subscription_calls_total",
			Help:      "Alert backend calls by operation and outcome.",
		}, []string{"operation", "success"}),
	}

	collectors := []prometheus.Collector{
		m.locationAttempts,
		m.resolutions,
		m.weatherFetches,
		m.weatherLatency,
		m.classifications,
		m.routeAssessments,
		m.subscriptionCalls,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusMetricsCollector) RecordLocationAttempt(provider string, success bool) {
	m.locationAttempts.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordResolution(source string) {
	m.resolutions.WithLabelValues(source).Inc()
}

func (m *PrometheusMetricsCollector) RecordWeatherFetch(provider string, success bool, duration time.Duration) {
	m.weatherFetches.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
	m.weatherLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordClassification(level string) {
	m.classifications.WithLabelValues(level).Inc()
}

func (m *PrometheusMetricsCollector) RecordRouteAssessment(color string, stale bool) {
	if stale {
		color = "none"
	}
	m.routeAssessments.WithLabelValues(color, strconv.FormatBool(stale)).Inc()
}

func (m *PrometheusMetricsCollector) RecordSubscriptionCall(operation string, success bool) {
	m.subscriptionCalls.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

// RegisterStoreStats exports the session store's hit/miss counters, read at scrape time
func RegisterStoreStats(reg prometheus.Registerer, storeType string, stats ports.CacheMetrics) error {
	labels := prometheus.Labels{"store": storeType}
	collectors := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "store_hits_total",
			Help:        "Session store hits.",
			ConstLabels: labels,
		}, func() float64 { return float64(stats.GetStats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "store_misses_total",
			Help:        "Session store misses.",
			ConstLabels: labels,
		}, func() float64 { return float64(stats.GetStats().Misses) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "store_hit_ratio",
			Help:        "Session store hit ratio.",
			ConstLabels: labels,
		}, func() float64 { return stats.GetStats().HitRatio }),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
