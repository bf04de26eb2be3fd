package chart

import "github.com/lucasb-eyer/go-colorful"

// Palette is the cyclic set of track colors. Tracks reuse colors by
// index modulo the palette size.
type Palette []string

// DefaultPalette builds the six-color track palette. Hues are spread
// evenly over the color circle so neighboring tracks stay apart.
func DefaultPalette() Palette {
	palette := make(Palette, 6)
	for i := range palette {
		palette[i] = colorful.Hsv(float64(i)*60.0, 0.70, 0.80).Hex()
	}

	return palette
}

// Color returns the hex color assigned to a track index.
func (p Palette) Color(trackIndex int) string {
	return p[trackIndex%len(p)]
}
