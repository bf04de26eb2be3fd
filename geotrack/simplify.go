package geotrack

import "math"

// Simplify reduces a point sequence with the Ramer-Douglas-Peucker
// algorithm. Epsilon is a perpendicular distance in decimal degrees,
// matching the resolution of the encoded summary polylines this feeds.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return points
	}

	first, last := points[0], points[len(points)-1]

	iFarthest, dFarthest := 0, 0.0
	for i := 1; i < len(points)-1; i++ {
		if d := perpendicularDistance(points[i], first, last); d > dFarthest {
			iFarthest, dFarthest = i, d
		}
	}

	if dFarthest <= epsilon {
		return []Point{first, last}
	}

	left := Simplify(points[:iFarthest+1], epsilon)
	right := Simplify(points[iFarthest:], epsilon)

	// The farthest point ends both halves, drop one copy.
	return append(append([]Point{}, left[:len(left)-1]...), right...)
}

func perpendicularDistance(p, a, b Point) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat

	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}

	return math.Abs(dy*p.Lon-dx*p.Lat+b.Lon*a.Lat-b.Lat*a.Lon) / norm
}
