package chart

import (
	"math"

	"gitlab.com/begraf/tourenblick/geotrack"
)

// Padding is the pixel margin between the viewport edge and the plotting
// area on all four sides.
const Padding = 40.0

// flatElevationRange substitutes the vertical scale for tracks without
// any elevation variance. A flat track then sits on the chart's vertical
// midpoint instead of dividing by zero.
const flatElevationRange = 100.0

// ProjectedPoint is a track point's pixel-space representation within the
// elevation chart. Rebuilt on every projection; used for hover lookups
// only, never persisted.
type ProjectedPoint struct {
	X, Y       float64
	TrackIndex int
	Elevation  float64
	DistanceKm float64
	Source     geotrack.Point
}

// Chart is one complete projection of a tour onto a viewport: the SVG
// document, every projected point for nearest-point lookups, and the
// grid values. Projections carry no state between calls; a resize simply
// projects again from the owned tracks.
type Chart struct {
	Width, Height  int
	SVG            string
	Points         []ProjectedPoint
	ElevationTicks []float64
	DistanceTicks  []float64
	// Separators holds the x coordinate of the first point of every
	// track after the first, marking track boundaries on the shared
	// distance axis.
	Separators []float64

	palette Palette
}

// TrackColor returns the display color of a track index.
func (c *Chart) TrackColor(trackIndex int) string {
	return c.palette.Color(trackIndex)
}

type scale struct {
	width, height float64
	minEle, spanM float64
	totalKm       float64
}

func (s scale) x(km float64) float64 {
	if s.totalKm == 0 {
		return Padding
	}

	return Padding + (s.width-2*Padding)*km/s.totalKm
}

func (s scale) y(elevation float64) float64 {
	return Padding + (s.height-2*Padding)*(1-(elevation-s.minEle)/s.spanM)
}

// Project maps the tracks' cumulative distance onto the horizontal axis
// and elevation onto the inverted vertical axis, both within the padded
// plotting area. The cumulative distance runs across all tracks in
// order, including the gap between one track's end and the next one's
// start, so the final point lands on the right edge of the plot.
func Project(tracks []geotrack.Track, stats geotrack.Stats, width, height int) *Chart {
	c := &Chart{
		Width:   width,
		Height:  height,
		palette: DefaultPalette(),
	}

	minEle, maxEle := stats.MinElevation, stats.MaxElevation
	if math.IsInf(minEle, 1) {
		// No point passed the min/max scan; draw around zero.
		minEle, maxEle = 0, 0
	}

	span := maxEle - minEle
	if span == 0 {
		minEle -= flatElevationRange / 2
		span = flatElevationRange
	}

	sc := scale{
		width:   float64(width),
		height:  float64(height),
		minEle:  minEle,
		spanM:   span,
		totalKm: stats.DistanceKm,
	}

	var (
		cumKm float64
		prev  *geotrack.Point
	)

	for trackIndex, track := range tracks {
		for i := range track {
			p := track[i]

			if prev != nil {
				cumKm += geotrack.DistanceMeters(prev.Lat, prev.Lon, p.Lat, p.Lon) / 1000
			}

			pp := ProjectedPoint{
				X:          sc.x(cumKm),
				Y:          sc.y(p.Elevation),
				TrackIndex: trackIndex,
				Elevation:  p.Elevation,
				DistanceKm: cumKm,
				Source:     p,
			}

			if i == 0 && trackIndex > 0 {
				c.Separators = append(c.Separators, pp.X)
			}

			c.Points = append(c.Points, pp)
			prev = &track[i]
		}
	}

	c.ElevationTicks = ElevationTicks(stats.MinElevation, stats.MaxElevation)
	c.DistanceTicks = DistanceTicks(stats.DistanceKm)
	c.SVG = renderSVG(c, sc)

	return c
}
