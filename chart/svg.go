package chart

import (
	"bytes"
	"fmt"

	"gitlab.com/begraf/tourenblick/geotrack"
)

const (
	gridColor      = "#d0d0d0"
	separatorColor = "#888888"
	labelColor     = "#555555"
	labelFontSize  = 11
)

// renderSVG draws the chart from the projected points: a horizontal grid
// line per elevation tick, a vertical one per distance tick, a dashed
// separator at every track boundary and one colored path per track.
func renderSVG(c *Chart, sc scale) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		c.Width, c.Height, c.Width, c.Height)

	left, right := Padding, float64(c.Width)-Padding
	top, bottom := Padding, float64(c.Height)-Padding

	for _, ele := range c.ElevationTicks {
		y := sc.y(ele)
		fmt.Fprintf(&buf,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`,
			left, y, right, y, gridColor)
		fmt.Fprintf(&buf,
			`<text x="%.1f" y="%.1f" text-anchor="end" fill="%s" font-size="%d">%.0f m</text>`,
			left-4, y+4, labelColor, labelFontSize, ele)
	}

	for _, km := range c.DistanceTicks {
		x := sc.x(km)
		fmt.Fprintf(&buf,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`,
			x, top, x, bottom, gridColor)
		fmt.Fprintf(&buf,
			`<text x="%.1f" y="%.1f" text-anchor="middle" fill="%s" font-size="%d">%.0f km</text>`,
			x, bottom+16, labelColor, labelFontSize, km)
	}

	for _, x := range c.Separators {
		fmt.Fprintf(&buf,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>`,
			x, top, x, bottom, separatorColor)
	}

	for trackIndex, path := range trackPaths(c.Points) {
		fmt.Fprintf(&buf,
			`<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`,
			path, c.TrackColor(trackIndex))
	}

	buf.WriteString(`</svg>`)

	return buf.String()
}

// trackPaths renders one SVG path string per track from the flat
// projected point list.
func trackPaths(points []ProjectedPoint) []string {
	var (
		paths []string
		buf   bytes.Buffer
		last  = -1
	)

	flush := func() {
		if last >= 0 {
			paths = append(paths, buf.String())
			buf.Reset()
		}
	}

	for _, p := range points {
		if p.TrackIndex != last {
			flush()
			last = p.TrackIndex
			fmt.Fprintf(&buf, "M%.1f %.1f", p.X, p.Y)
			continue
		}

		fmt.Fprintf(&buf, " L%.1f %.1f", p.X, p.Y)
	}

	flush()

	return paths
}

// StartFinishMarkers returns the geographic start and finish coordinates
// of a tour, the two map markers the detail view always shows.
func StartFinishMarkers(tracks []geotrack.Track) (start, finish geotrack.Point, ok bool) {
	flat := geotrack.Flatten(tracks)
	if len(flat) == 0 {
		return geotrack.Point{}, geotrack.Point{}, false
	}

	return flat[0], flat[len(flat)-1], true
}
