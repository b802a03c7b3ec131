package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"floodaware.app/internal/adapters/external"
	"floodaware.app/internal/core/location"
	"floodaware.app/internal/ports"
	"floodaware.app/pkg/errors"
)

// SessionHeader carries the client's session id; a new one is issued when absent
const SessionHeader = "X-Session-ID"

// DevicePositionRequest is the device geolocation outcome reported by the client.
// Omitting it means the client has no geolocation capability.
type DevicePositionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Denied    bool     `json:"denied"`
}

func (d *DevicePositionRequest) capability() ports.DeviceGeolocation {
	if d == nil {
		return nil
	}
	return external.ReportedDevicePosition{
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
		Denied:    d.Denied,
	}
}

// sessionID returns the request's session id and echoes it on the response
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(SessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}

// locationRequest builds the per-request inputs of the location chain.
// The device outcome comes from the body when given, else from the query string.
func locationRequest(c *gin.Context, device *DevicePositionRequest) (ports.LocationRequest, error) {
	if device == nil {
		var err error
		if device, err = deviceFromQuery(c); err != nil {
			return ports.LocationRequest{}, err
		}
	}
	return ports.LocationRequest{
		ClientIP: c.ClientIP(),
		Device:   device.capability(),
	}, nil
}

// deviceFromQuery reads device_lat, device_lon and device_denied
func deviceFromQuery(c *gin.Context) (*DevicePositionRequest, error) {
	rawLat, hasLat := c.GetQuery("device_lat")
	rawLon, hasLon := c.GetQuery("device_lon")
	rawDenied, hasDenied := c.GetQuery("device_denied")
	if !hasLat && !hasLon && !hasDenied {
		return nil, nil
	}

	device := &DevicePositionRequest{}
	if hasDenied {
		denied, err := strconv.ParseBool(rawDenied)
		if err != nil {
			return nil, errors.NewValidationError("device_denied must be a boolean")
		}
		device.Denied = denied
	}
	if hasLat {
		lat, err := strconv.ParseFloat(rawLat, 64)
		if err != nil {
			return nil, errors.NewValidationError("device_lat must be a number")
		}
		device.Latitude = &lat
	}
	if hasLon {
		lon, err := strconv.ParseFloat(rawLon, 64)
		if err != nil {
			return nil, errors.NewValidationError("device_lon must be a number")
		}
		device.Longitude = &lon
	}
	return device, nil
}

// optionalCoordinates validates a lat/lon pair where both or neither must be present
func optionalCoordinates(lat, lon *float64, field string) (*location.Coordinates, error) {
	if lat == nil && lon == nil {
		return nil, nil
	}
	if lat == nil || lon == nil {
		return nil, errors.NewValidationError(field + " requires both latitude and longitude")
	}
	coords, err := location.NewCoordinates(*lat, *lon)
	if err != nil {
		return nil, errors.NewValidationError(field + ": " + err.Error())
	}
	return coords, nil
}
