package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// lookupTarget returns the path segment for a lookup of clientIP. Private, loopback
// and unparsable addresses fall back to the egress address of this service.
func lookupTarget(clientIP string) string {
	ip := net.ParseIP(strings.TrimSpace(clientIP))
	if ip == nil || ip.IsPrivate() || ip.IsLoopback() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}

// getJSON performs a GET and decodes a JSON body into out
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, rawURL, provider string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.NewNetworkError("failed to build "+provider+" request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewNetworkError("failed to call "+provider, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body", ports.F("provider", provider), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.NewNetworkError(fmt.Sprintf("%s returned status %d", provider, resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewNetworkError("failed to decode "+provider+" response", err)
	}
	return nil
}

// IPInfoProviderAdapter implements LocationProvider for ipinfo.io
type IPInfoProviderAdapter struct {
	token   string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// IPInfoProviderParams holds parameters for creating the ipinfo provider
type IPInfoProviderParams struct {
	Token   string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// IPInfoResponse represents the response from ipinfo.io
type IPInfoResponse struct {
	City   string `json:"city"`
	Region string `json:"region"`
	Loc    string `json:"loc"`
}

// NewIPInfoProviderAdapter creates a new ipinfo provider adapter
func NewIPInfoProviderAdapter(params IPInfoProviderParams) ports.LocationProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://ipinfo.io"
	}
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &IPInfoProviderAdapter{
		token:   params.Token,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// Locate looks up the client address and parses the combined "lat,lon" field
func (p *IPInfoProviderAdapter) Locate(ctx context.Context, req ports.LocationRequest) (*ports.LocationFix, error) {
	endpoint := p.baseURL + "/json"
	if target := lookupTarget(req.ClientIP); target != "" {
		endpoint = p.baseURL + "/" + target + "/json"
	}
	if p.token != "" {
		endpoint += "?" + url.Values{"token": {p.token}}.Encode()
	}

	var body IPInfoResponse
	if err := getJSON(ctx, p.client, p.logger, endpoint, "ipinfo", &body); err != nil {
		return nil, err
	}

	lat, lon, err := ParseLoc(body.Loc)
	if err != nil {
		return nil, errors.NewLocationUnavailableError("ipinfo returned an unusable loc", err)
	}

	return &ports.LocationFix{
		Latitude:  lat,
		Longitude: lon,
		City:      body.City,
		Region:    body.Region,
		Source:    ports.LocationSourceIPGeolocation,
	}, nil
}

// GetProviderName returns the name of this location provider
func (p *IPInfoProviderAdapter) GetProviderName() string {
	return "ipinfo"
}

// ParseLoc splits a "lat,lon" string into two floats
func ParseLoc(loc string) (float64, float64, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat,lon\", got %q", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude: %w", err)
	}
	return lat, lon, nil
}

// IPAPIProviderAdapter implements LocationProvider for ipapi.co
type IPAPIProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// IPAPIProviderParams holds parameters for creating the ipapi provider
type IPAPIProviderParams struct {
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// IPAPIResponse represents the response from ipapi.co
type IPAPIResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	Region    string   `json:"region"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// NewIPAPIProviderAdapter creates a new ipapi provider adapter
func NewIPAPIProviderAdapter(params IPAPIProviderParams) ports.LocationProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://ipapi.co"
	}
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &IPAPIProviderAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// Locate looks up the client address; coordinates arrive as separate fields
func (p *IPAPIProviderAdapter) Locate(ctx context.Context, req ports.LocationRequest) (*ports.LocationFix, error) {
	endpoint := p.baseURL + "/json/"
	if target := lookupTarget(req.ClientIP); target != "" {
		endpoint = p.baseURL + "/" + target + "/json/"
	}

	var body IPAPIResponse
	if err := getJSON(ctx, p.client, p.logger, endpoint, "ipapi", &body); err != nil {
		return nil, err
	}
	if body.Error {
		return nil, errors.NewLocationUnavailableError("ipapi lookup rejected: "+body.Reason, nil)
	}
	if body.Latitude == nil || body.Longitude == nil {
		return nil, errors.NewLocationUnavailableError("ipapi response has no coordinates", nil)
	}

	return &ports.LocationFix{
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
		City:      body.City,
		Region:    body.Region,
		Source:    ports.LocationSourceIPGeolocation,
	}, nil
}

// GetProviderName returns the name of this location provider
func (p *IPAPIProviderAdapter) GetProviderName() string {
	return "ipapi"
}
