package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API.
// Optional blocks are pointers so an omitted field stays distinguishable from zero.
type OpenWeatherMapResponse struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity *int    `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Rain *struct {
		OneHour *float64 `json:"1h"`
	} `json:"rain"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current conditions at lat/lon in metric units
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, lat, lon float64) (*ports.WeatherObservation, error) {
	query := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {p.apiKey},
		"units": {"metric"},
	}

	var apiResp OpenWeatherMapResponse
	if err := getJSON(ctx, p.client, p.logger, p.baseURL+"/weather?"+query.Encode(), "OpenWeatherMap", &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Main == nil {
		return nil, errors.NewNetworkError("OpenWeatherMap response has no main block", nil)
	}

	obs := &ports.WeatherObservation{
		Temperature: apiResp.Main.Temp,
		HumidityPct: apiResp.Main.Humidity,
	}
	if len(apiResp.Weather) > 0 {
		obs.Description = apiResp.Weather[0].Description
	}
	if apiResp.Wind != nil {
		obs.WindSpeedMs = apiResp.Wind.Speed
	}
	if apiResp.Rain != nil {
		obs.RainfallMm1h = apiResp.Rain.OneHour
	}
	if apiResp.Dt > 0 {
		obs.ObservedAt = time.Unix(apiResp.Dt, 0).UTC()
	}
	return obs, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
