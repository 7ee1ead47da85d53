// Package tiles matches HLS imagery tiles to river reach nodes: it queries
// the catalog per node, deduplicates the returned band links and buckets them
// by acquisition date.
package tiles

import "strconv"

// NodeCoordinate is the location of one SWORD node. SWORD stores longitude
// in its x variable and latitude in y.
type NodeCoordinate struct {
	Longitude float64
	Latitude  float64
}

// Pair returns the coordinate in GeoJSON axis order.
func (n NodeCoordinate) Pair() []float64 {
	return []float64{n.Longitude, n.Latitude}
}

// String renders the coordinate as "[lon, lat]".
func (n NodeCoordinate) String() string {
	return "[" + strconv.FormatFloat(n.Longitude, 'f', -1, 64) + ", " + strconv.FormatFloat(n.Latitude, 'f', -1, 64) + "]"
}
