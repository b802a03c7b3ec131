package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"floodaware.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxPortNumber       = 65535
	maxSelectionMinutes = 1440
	maxTimeoutSeconds   = 120
)

// Config represents the flood engine configuration
type Config struct {
	Server       ServerConfig       `split_words:"true"`
	Location     LocationConfig     `split_words:"true"`
	Weather      WeatherConfig      `split_words:"true"`
	Thresholds   ThresholdsConfig   `split_words:"true"`
	Route        RouteConfig        `split_words:"true"`
	Subscription SubscriptionConfig `split_words:"true"`
	Store        StoreConfig        `split_words:"true"`
}

// BackendConfig represents the alert backend configuration
type BackendConfig struct {
	Port     int            `envconfig:"BACKEND_PORT" default:"8081"`
	Database DatabaseConfig `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type LocationConfig struct {
	ProviderOrder        []string `envconfig:"LOCATION_PROVIDER_ORDER" default:"device,ipinfo,ipapi"`
	DeviceTimeoutSeconds int      `envconfig:"LOCATION_DEVICE_TIMEOUT_SECONDS" default:"5"`
	IPInfoToken          string   `envconfig:"IPINFO_TOKEN"`
	IPInfoBaseURL        string   `envconfig:"IPINFO_BASE_URL" default:"https://ipinfo.io"`
	IPAPIBaseURL         string   `envconfig:"IPAPI_BASE_URL" default:"https://ipapi.co"`
	LookupTimeoutSeconds int      `envconfig:"LOCATION_LOOKUP_TIMEOUT_SECONDS" default:"5"`
	EnableLogging        bool     `envconfig:"LOCATION_ENABLE_LOGGING" default:"true"`
	LogFilePath          string   `envconfig:"LOCATION_LOG_FILE_PATH" default:"logs/location_providers.log"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	TimeoutSeconds        int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	BreakerMaxFailures    uint32 `envconfig:"WEATHER_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds    int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"30"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
}

// ThresholdsConfig is the alert threshold table. Exceeding a value triggers its rule.
type ThresholdsConfig struct {
	RainfallMm1h float64 `envconfig:"RISK_RAINFALL_MM_1H" default:"50"`
	WindSpeedMs  float64 `envconfig:"RISK_WIND_SPEED_MS" default:"15"`
	HumidityPct  int     `envconfig:"RISK_HUMIDITY_PCT" default:"85"`
}

type RouteConfig struct {
	SelectionTTLMinutes int `envconfig:"ROUTE_SELECTION_TTL_MINUTES" default:"30"`
}

type SubscriptionConfig struct {
	BackendURL     string `envconfig:"SUBSCRIPTION_BACKEND_URL" default:"http://localhost:8081"`
	TimeoutSeconds int    `envconfig:"SUBSCRIPTION_TIMEOUT_SECONDS" default:"10"`
}

type StoreConfig struct {
	Type  string      `envconfig:"STORE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"floodalerts"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// LoadConfig reads and validates the engine configuration from the environment
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadBackendConfig reads and validates the alert backend configuration from the environment
func LoadBackendConfig() (*BackendConfig, error) {
	var config BackendConfig
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing backend config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		&c.Server,
		&c.Location,
		&c.Weather,
		&c.Thresholds,
		&c.Route,
		&c.Subscription,
		&c.Store,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (b *BackendConfig) Validate() error {
	if err := validatePort("BACKEND_PORT", b.Port); err != nil {
		return err
	}
	return b.Database.Validate()
}

func (s *ServerConfig) Validate() error {
	return validatePort("SERVER_PORT", s.Port)
}

func (l *LocationConfig) Validate() error {
	if len(l.ProviderOrder) == 0 {
		return errors.NewConfigurationError("LOCATION_PROVIDER_ORDER cannot be empty", nil)
	}

	validProviders := map[string]bool{
		"device": true,
		"ipinfo": true,
		"ipapi":  true,
	}
	for _, provider := range l.ProviderOrder {
		if !validProviders[provider] {
			return errors.NewConfigurationError(fmt.Sprintf("invalid location provider in order: %s", provider), nil)
		}
	}

	if err := validateTimeout("LOCATION_DEVICE_TIMEOUT_SECONDS", l.DeviceTimeoutSeconds); err != nil {
		return err
	}
	if err := validateTimeout("LOCATION_LOOKUP_TIMEOUT_SECONDS", l.LookupTimeoutSeconds); err != nil {
		return err
	}
	if err := validateURL("IPINFO_BASE_URL", l.IPInfoBaseURL); err != nil {
		return err
	}
	if err := validateURL("IPAPI_BASE_URL", l.IPAPIBaseURL); err != nil {
		return err
	}
	if l.EnableLogging && l.LogFilePath == "" {
		return errors.NewConfigurationError("LOCATION_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if err := validateURL("OPENWEATHERMAP_API_BASE_URL", w.OpenWeatherMapBaseURL); err != nil {
		return err
	}
	if err := validateTimeout("WEATHER_TIMEOUT_SECONDS", w.TimeoutSeconds); err != nil {
		return err
	}
	if w.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (t *ThresholdsConfig) Validate() error {
	if math.IsNaN(t.RainfallMm1h) || t.RainfallMm1h < 0 {
		return errors.NewConfigurationError("RISK_RAINFALL_MM_1H must be a non-negative number", nil)
	}
	if math.IsNaN(t.WindSpeedMs) || t.WindSpeedMs < 0 {
		return errors.NewConfigurationError("RISK_WIND_SPEED_MS must be a non-negative number", nil)
	}
	if t.HumidityPct < 0 || t.HumidityPct > 100 {
		return errors.NewConfigurationError("RISK_HUMIDITY_PCT must be between 0 and 100", nil)
	}
	return nil
}

func (r *RouteConfig) Validate() error {
	if r.SelectionTTLMinutes < 1 || r.SelectionTTLMinutes > maxSelectionMinutes {
		return errors.NewConfigurationError("ROUTE_SELECTION_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (s *SubscriptionConfig) Validate() error {
	if err := validateURL("SUBSCRIPTION_BACKEND_URL", s.BackendURL); err != nil {
		return err
	}
	return validateTimeout("SUBSCRIPTION_TIMEOUT_SECONDS", s.TimeoutSeconds)
}

func (s *StoreConfig) Validate() error {
	switch s.Type {
	case "memory":
		return nil
	case "redis":
		return s.Redis.Validate()
	default:
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis", nil)
	}
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if err := validatePort("DB_PORT", d.Port); err != nil {
		return err
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func validatePort(name string, port int) error {
	if port < 1 || port > maxPortNumber {
		return errors.NewConfigurationError(name+" must be between 1 and 65535", nil)
	}
	return nil
}

func validateTimeout(name string, seconds int) error {
	if seconds < 1 || seconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(name+" must be between 1 and 120 seconds", nil)
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
