package geotrack

import (
	"math"
	"testing"
)

func elevations(values ...float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		// Spread the points slightly so distance accumulation has work to do.
		points[i] = Point{Lat: 46.0 + float64(i)*0.001, Lon: 7.0, Elevation: v}
	}

	return points
}

func TestComputeStatsMonotonicAscent(t *testing.T) {
	stats := ComputeStats(elevations(100, 200, 300))

	if stats.ElevationGain != 200 {
		t.Errorf("elevation gain: got %v, want 200", stats.ElevationGain)
	}
	if stats.MaxElevation != 300 {
		t.Errorf("max elevation: got %v, want 300", stats.MaxElevation)
	}
	if stats.MinElevation != 100 {
		t.Errorf("min elevation: got %v, want 100", stats.MinElevation)
	}
}

func TestComputeStatsDescentsIgnored(t *testing.T) {
	stats := ComputeStats(elevations(100, 50, 150))

	if stats.ElevationGain != 100 {
		t.Errorf("elevation gain: got %v, want 100", stats.ElevationGain)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.DistanceKm != 0 || stats.ElevationGain != 0 {
		t.Errorf("empty input: got distance %v, gain %v", stats.DistanceKm, stats.ElevationGain)
	}
	if !math.IsInf(stats.MinElevation, 1) || !math.IsInf(stats.MaxElevation, -1) {
		t.Errorf("empty input: got min %v, max %v", stats.MinElevation, stats.MaxElevation)
	}
}

func TestComputeStatsZeroElevationSkippedForMinMax(t *testing.T) {
	stats := ComputeStats(elevations(0, 100, 200))

	if stats.MinElevation != 100 {
		t.Errorf("min elevation: got %v, want 100 (zero skipped)", stats.MinElevation)
	}
	if stats.ElevationGain != 200 {
		// The ascent from 0 still counts for the gain.
		t.Errorf("elevation gain: got %v, want 200", stats.ElevationGain)
	}
}

func TestComputeStatsDistance(t *testing.T) {
	stats := ComputeStats([]Point{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.01, Lon: 7.0, Elevation: 1100},
	})

	if math.Abs(stats.DistanceKm-1.11195) > 0.02 {
		t.Errorf("distance: got %v km, want about 1.11", stats.DistanceKm)
	}
	if stats.ElevationGain != 100 {
		t.Errorf("elevation gain: got %v, want 100", stats.ElevationGain)
	}
}
