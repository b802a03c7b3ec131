package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floodaware.app/internal/core/route"
)

// PlanRouteRequest represents the HTTP request for a route assessment
type PlanRouteRequest struct {
	Destination string                 `json:"destination" binding:"required,destination"`
	OriginLat   *float64               `json:"origin_lat"`
	OriginLon   *float64               `json:"origin_lon"`
	Device      *DevicePositionRequest `json:"device"`
}

// SelectDestinationRequest represents the HTTP request for changing the destination
type SelectDestinationRequest struct {
	Destination string `json:"destination" binding:"required,destination"`
}

// RouteResponse wraps an assessment with the session it was computed for
type RouteResponse struct {
	SessionID string `json:"session_id"`
	*route.Assessment
}

// planRoute handles POST /api/routes requests
func (s *HTTPServerAdapter) planRoute(c *gin.Context) {
	session := sessionID(c)

	var httpReq PlanRouteRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	origin, err := optionalCoordinates(httpReq.OriginLat, httpReq.OriginLon, "origin")
	if err != nil {
		s.handleError(c, err)
		return
	}
	locReq, err := locationRequest(c, httpReq.Device)
	if err != nil {
		s.handleError(c, err)
		return
	}

	assessment, err := s.routes.Plan(c.Request.Context(), route.PlanRequest{
		SessionID:      session,
		DestinationKey: httpReq.Destination,
		Origin:         origin,
		Location:       locReq,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, RouteResponse{SessionID: session, Assessment: assessment})
}

// selectDestination handles PUT /api/routes/selection requests
func (s *HTTPServerAdapter) selectDestination(c *gin.Context) {
	session := sessionID(c)

	var httpReq SelectDestinationRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	dest, err := s.routes.Select(c.Request.Context(), session, httpReq.Destination)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": session, "destination": dest})
}

// clearSelection handles DELETE /api/routes/selection requests
func (s *HTTPServerAdapter) clearSelection(c *gin.Context) {
	session := sessionID(c)

	if err := s.routes.ClearSelection(c.Request.Context(), session); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
