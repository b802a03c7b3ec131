package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floodaware.app/internal/core/location"
	"floodaware.app/internal/core/route"
	"floodaware.app/internal/core/subscription"
)

// SubscribeRequest represents the HTTP request for creating a subscription.
// The alert location is chosen by the user, either as coordinates or as a
// destination key.
type SubscribeRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Destination string   `json:"destination" binding:"omitempty,destination"`
}

// EmailRequest represents requests that only carry an email
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// StatusRequest asks for the subscription indicator. PreviousEmail is set when
// the profile email just changed.
type StatusRequest struct {
	Email         string `json:"email" binding:"required,email"`
	PreviousEmail string `json:"previous_email"`
}

// subscribe handles POST /api/subscribe requests
func (s *HTTPServerAdapter) subscribe(c *gin.Context) {
	var httpReq SubscribeRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	coords, err := subscriptionCoordinates(httpReq)
	if err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.subscriptions.Subscribe(c.Request.Context(), httpReq.Email, coords)
	if err != nil {
		s.handleError(c, err)
		return
	}
	writeResult(c, result)
}

// subscriptionCoordinates returns nil when no target was chosen; the
// coordinator rejects that before contacting the backend.
func subscriptionCoordinates(req SubscribeRequest) (*location.Coordinates, error) {
	coords, err := optionalCoordinates(req.Latitude, req.Longitude, "location")
	if err != nil || coords != nil {
		return coords, err
	}

	if req.Destination != "" {
		_, coords = route.LookupDestination(req.Destination)
	}
	return coords, nil
}

// unsubscribe handles DELETE /api/unsubscribe requests
func (s *HTTPServerAdapter) unsubscribe(c *gin.Context) {
	var httpReq EmailRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	result, err := s.subscriptions.Unsubscribe(c.Request.Context(), httpReq.Email)
	if err != nil {
		s.handleError(c, err)
		return
	}
	writeResult(c, result)
}

// subscriptionStatus handles POST /api/subscription/status requests.
// The indicator must always reflect the backend, so responses are never cached.
func (s *HTTPServerAdapter) subscriptionStatus(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	var httpReq StatusRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	var (
		status *subscription.Status
		err    error
	)
	if httpReq.PreviousEmail != "" {
		status, err = s.subscriptions.RefreshAfterEmailChange(c.Request.Context(), httpReq.PreviousEmail, httpReq.Email)
	} else {
		status, err = s.subscriptions.CheckStatus(c.Request.Context(), httpReq.Email)
	}
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// writeResult passes the backend payload through; a rejected request is a conflict
func writeResult(c *gin.Context, result *subscription.Result) {
	code := http.StatusOK
	if !result.Success {
		code = http.StatusConflict
	}
	c.JSON(code, result)
}
