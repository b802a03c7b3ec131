package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/route"
	"floodaware.app/pkg/errors"
)

// MessageAlertsUnavailable is shown when the alert weather lookup fails
const MessageAlertsUnavailable = "Failed to fetch alerts. Please try again later."

// LocationResponse represents the resolved location of the caller
type LocationResponse struct {
	Resolved    bool                  `json:"resolved"`
	Source      string                `json:"source"`
	Coordinates *location.Coordinates `json:"coordinates,omitempty"`
	Label       *location.PlaceLabel  `json:"label,omitempty"`
	Place       string                `json:"place"`
}

// DestinationsResponse lists the selectable destinations
type DestinationsResponse struct {
	Destinations []route.Destination `json:"destinations"`
}

// getLocation handles GET /api/location requests
func (s *HTTPServerAdapter) getLocation(c *gin.Context) {
	req, err := locationRequest(c, nil)
	if err != nil {
		s.handleError(c, err)
		return
	}

	resolution := s.locations.Resolve(c.Request.Context(), req)

	response := LocationResponse{
		Resolved:    resolution.IsResolved(),
		Source:      resolution.Source.String(),
		Coordinates: resolution.Coordinates,
		Label:       resolution.Label,
		Place:       location.UnknownPlace,
	}
	if resolution.Label != nil && resolution.Label.City != "" {
		response.Place = resolution.Label.City
	}
	c.JSON(http.StatusOK, response)
}

// getAlerts handles GET /api/alerts requests
func (s *HTTPServerAdapter) getAlerts(c *gin.Context) {
	req, err := locationRequest(c, nil)
	if err != nil {
		s.handleError(c, err)
		return
	}

	report, err := s.alerts.Report(c.Request.Context(), req)
	if err != nil {
		if errors.IsNetworkError(err) {
			s.logger.Warn("Alert weather unavailable")
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: MessageAlertsUnavailable})
			return
		}
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// listDestinations handles GET /api/destinations requests
func (s *HTTPServerAdapter) listDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, DestinationsResponse{Destinations: route.Destinations()})
}
