package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error to its HTTP status and the message shown to the client.
// Infrastructure details never reach the client.
func statusFor(err error) (int, string) {
	var appErr *errors.AppError
	if !asAppError(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Type {
	case errors.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errors.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errors.AlreadyExistsError:
		return http.StatusConflict, appErr.Message
	case errors.StaleResultError:
		return http.StatusConflict, appErr.Message
	case errors.NetworkError, errors.LocationUnavailableError:
		return http.StatusServiceUnavailable, "External service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	code, message := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			ports.F("path", c.FullPath()),
			ports.F("status", code),
			ports.F("error", err))
	} else {
		s.logger.Debug("Request rejected",
			ports.F("path", c.FullPath()),
			ports.F("status", code),
			ports.F("error", err))
	}
	c.JSON(code, ErrorResponse{Error: message})
}
