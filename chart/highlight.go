package chart

import (
	"fmt"
	"math"
)

// Highlight is the resolved feedback for one pointer position: the
// matched point, the owning track's color and the 1-based track number
// shown in the tooltip.
type Highlight struct {
	Point       ProjectedPoint
	Color       string
	TrackNumber int
}

// Tooltip returns the display line for the highlight.
func (h *Highlight) Tooltip() string {
	return fmt.Sprintf("%.0f m, %.2f km (track %d)", h.Point.Elevation, h.Point.DistanceKm, h.TrackNumber)
}

// NearestPoint scans all projected points for the one closest to the
// horizontal pixel coordinate x. Only a strictly smaller distance
// replaces the current best, so ties resolve to the earlier point in
// scan order: lower track index first, then earlier position.
func NearestPoint(points []ProjectedPoint, x float64) (ProjectedPoint, bool) {
	if len(points) == 0 {
		return ProjectedPoint{}, false
	}

	best := points[0]
	bestDist := math.Abs(points[0].X - x)

	for _, p := range points[1:] {
		if d := math.Abs(p.X - x); d < bestDist {
			best, bestDist = p, d
		}
	}

	return best, true
}

// HighlightAt resolves a pointer x position to a highlight decision.
// Positions outside the padded plotting area yield nil, which callers
// treat as "clear any existing highlight".
func (c *Chart) HighlightAt(x float64) *Highlight {
	if x < Padding || x > float64(c.Width)-Padding {
		return nil
	}

	p, ok := NearestPoint(c.Points, x)
	if !ok {
		return nil
	}

	return &Highlight{
		Point:       p,
		Color:       c.TrackColor(p.TrackIndex),
		TrackNumber: p.TrackIndex + 1,
	}
}
