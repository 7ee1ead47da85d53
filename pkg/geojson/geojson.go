// Package geojson provides the GeoJSON point geometry used for catalog
// intersects queries.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidPoint is returned when a point cannot be built from its coordinates.
var ErrInvalidPoint = errors.New("invalid point")

// Geometry represents a GeoJSON geometry object.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// NewPoint creates a Point geometry at [lon, lat].
func NewPoint(lon, lat float64) (*Geometry, error) {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return nil, fmt.Errorf("%w: coordinates must be finite, got [%v, %v]", ErrInvalidPoint, lon, lat)
	}

	coordsJSON, err := json.Marshal([]float64{lon, lat})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal point coordinates: %w", err)
	}

	return &Geometry{
		Type:        "Point",
		Coordinates: coordsJSON,
	}, nil
}

// NewPointFromPair creates a Point geometry from a positional [lon, lat] pair.
// Any other length is rejected.
func NewPointFromPair(pair []float64) (*Geometry, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("%w: expected 2 coordinates [lon, lat], got %d", ErrInvalidPoint, len(pair))
	}
	return NewPoint(pair[0], pair[1])
}

// Point returns the coordinates as a Point [lon, lat].
// Returns error if geometry is not a Point.
func (g *Geometry) Point() ([]float64, error) {
	if g.Type != "Point" {
		return nil, fmt.Errorf("geometry is not a Point, got %s", g.Type)
	}
	var coords []float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Point coordinates: %w", err)
	}
	if len(coords) < 2 {
		return nil, fmt.Errorf("invalid Point coordinates: expected at least 2 values, got %d", len(coords))
	}
	return coords, nil
}

// ToWKT converts a Point geometry to WKT, e.g. "POINT(-122.4 37.8)".
func ToWKT(g *Geometry) (string, error) {
	if g == nil {
		return "", fmt.Errorf("geometry is nil")
	}

	coords, err := g.Point()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("POINT(%s %s)", formatFloat(coords[0]), formatFloat(coords[1])), nil
}

// formatFloat formats a float64 without trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
