package tour

import (
	"fmt"

	"github.com/twpayne/go-polyline"
	"gitlab.com/begraf/tourenblick/geotrack"
)

// SummaryEpsilon is the simplification tolerance in decimal degrees for
// the overview polylines. Roughly 20 m, plenty for a zoomed-out map.
const SummaryEpsilon = 0.0002

// Entry is one tour in the generated overview index.
type Entry struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	SummaryPolyline string `json:"summary_polyline"`
}

// Category groups index entries for the overview map and picker.
type Category struct {
	Category string  `json:"category"`
	Tours    []Entry `json:"tours"`
}

// EncodeSummaryPolyline simplifies a point sequence to the overview
// resolution and encodes it in the signed 5-decimal delta polyline
// format.
func EncodeSummaryPolyline(points []geotrack.Point) string {
	simplified := geotrack.Simplify(points, SummaryEpsilon)

	coords := make([][]float64, len(simplified))
	for i, p := range simplified {
		coords[i] = []float64{p.Lat, p.Lon}
	}

	return string(polyline.EncodeCoords(coords))
}

// DecodeSummaryPolyline is the inverse of EncodeSummaryPolyline. The
// returned points carry no elevation.
func DecodeSummaryPolyline(encoded string) ([]geotrack.Point, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}

	points := make([]geotrack.Point, len(coords))
	for i, c := range coords {
		points[i] = geotrack.Point{Lat: c[0], Lon: c[1]}
	}

	return points, nil
}
