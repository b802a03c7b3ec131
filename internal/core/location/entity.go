package location

import (
	"fmt"

	"floodaware.app/pkg/validation"
)

// UnknownPlace is the label value used when a position could not be named
const UnknownPlace = "Unknown"

// Source identifies which step of the fallback chain produced a resolution
type Source int

const (
	SourceUnresolved Source = iota
	SourceDevice
	SourceIPGeolocation
)

// String returns the wire name of the source
func (s Source) String() string {
	switch s {
	case SourceDevice:
		return "device"
	case SourceIPGeolocation:
		return "ip_geolocation"
	default:
		return "unresolved"
	}
}

// Coordinates is a latitude/longitude pair. A partially known position is represented
// by a nil *Coordinates, never by a zero field.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// NewCoordinates validates lat/lon and returns a usable pair
func NewCoordinates(lat, lon float64) (*Coordinates, error) {
	if !validation.IsFinite(lat) || !validation.IsFinite(lon) {
		return nil, fmt.Errorf("coordinates must be finite numbers")
	}
	if !validation.IsValidLatitude(lat) {
		return nil, fmt.Errorf("latitude %v out of range", lat)
	}
	if !validation.IsValidLongitude(lon) {
		return nil, fmt.Errorf("longitude %v out of range", lon)
	}
	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}

// Equal compares two positions by value
func (c Coordinates) Equal(other Coordinates) bool {
	return c.Latitude == other.Latitude && c.Longitude == other.Longitude
}

// String renders the pair as "lat,lon"
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// PlaceLabel is a human-readable name for a resolved position
type PlaceLabel struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

// Resolution is the outcome of one pass over the provider chain.
// Coordinates is nil exactly when Source is SourceUnresolved. Label is nil when the
// provider could not name the place (device fixes).
type Resolution struct {
	Coordinates *Coordinates
	Source      Source
	Label       *PlaceLabel
}

// Unresolved returns the terminal resolution used when every provider failed
func Unresolved() Resolution {
	return Resolution{
		Source: SourceUnresolved,
		Label:  &PlaceLabel{City: UnknownPlace, Region: UnknownPlace},
	}
}

// IsResolved reports whether the resolution carries coordinates
func (r Resolution) IsResolved() bool {
	return r.Coordinates != nil
}
