package chart

import "math"

// ElevationTickStep returns the vertical grid step for an elevation
// range: range/6 rounded up to the next 50 m multiple, at least 50.
func ElevationTickStep(eleRange float64) float64 {
	step := math.Ceil(eleRange/6.0/50.0) * 50.0
	if step < 50 {
		step = 50
	}

	return step
}

// ElevationTicks lists the elevation grid values inside [minEle, maxEle].
// Multiples of the step outside the actual data range are suppressed.
func ElevationTicks(minEle, maxEle float64) []float64 {
	if maxEle < minEle {
		return nil
	}

	step := ElevationTickStep(maxEle - minEle)

	var ticks []float64
	for v := math.Ceil(minEle/step) * step; v <= maxEle; v += step {
		ticks = append(ticks, v)
	}

	return ticks
}

// DistanceTickStep picks the horizontal grid step for a total tour
// length in kilometers.
func DistanceTickStep(totalKm float64) float64 {
	switch {
	case totalKm <= 5:
		return 1
	case totalKm <= 10:
		return 2
	case totalKm <= 25:
		return 5
	default:
		return 10
	}
}

// DistanceTicks lists the distance grid values in (0, totalKm].
func DistanceTicks(totalKm float64) []float64 {
	step := DistanceTickStep(totalKm)

	var ticks []float64
	for v := step; v <= totalKm; v += step {
		ticks = append(ticks, v)
	}

	return ticks
}
