package geotrack

import "encoding/json"

// Point is a single recorded track point in WGS84 decimal degrees with
// elevation in meters. Points are immutable once parsed.
type Point struct {
	Lat, Lon  float64
	Elevation float64
}

// MarshalJSON renders the point as a [lat, lon] pair, the form the map
// overlay consumes.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// Track is one contiguous recorded path, the contents of a single <trk>
// element. Order is significant.
type Track []Point

// Flatten joins multiple tracks into one point sequence, keeping track
// order.
func Flatten(tracks []Track) []Point {
	var points []Point
	for _, track := range tracks {
		points = append(points, track...)
	}

	return points
}
