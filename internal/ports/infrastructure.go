package ports

import "time"

// LocationConfig represents location chain configuration
type LocationConfig struct {
	DeviceTimeout time.Duration
	ProviderOrder []string
}

// RiskConfig represents the alert threshold table
type RiskConfig struct {
	RainfallMm1h float64
	WindSpeedMs  float64
	HumidityPct  int
}

// RouteConfig represents route planning configuration
type RouteConfig struct {
	SelectionTTL time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// SubscriptionConfig represents alert backend client configuration
type SubscriptionConfig struct {
	BackendURL string
	Timeout    time.Duration
}

// StoreConfig represents session store configuration
type StoreConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetLocationConfig() LocationConfig
	GetRiskConfig() RiskConfig
	GetRouteConfig() RouteConfig
	GetServerConfig() ServerConfig
	GetSubscriptionConfig() SubscriptionConfig
	GetStoreConfig() StoreConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for engine metrics collection
type MetricsCollector interface {
	RecordLocationAttempt(provider string, success bool)
	RecordResolution(source string)
	RecordWeatherFetch(provider string, success bool, duration time.Duration)
	RecordClassification(level string)
	RecordRouteAssessment(color string, stale bool)
	RecordSubscriptionCall(operation string, success bool)
}
