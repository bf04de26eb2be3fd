package images

import (
	"time"

	"gitlab.com/begraf/tourenblick/geotrack"
)

// Photos further than this from every track point are considered not
// part of the tour and stay off the map.
const maxSnapMeters = 500.0

// Photo is one tour photo candidate for map placement.
type Photo struct {
	URI  string
	EXIF *EXIFData
}

// LocatedPhoto pins one photo to a coordinate on the tour map.
type LocatedPhoto struct {
	URI    string         `json:"uri"`
	LatLng geotrack.Point `json:"latlng"`
	Taken  string         `json:"taken,omitempty"`
}

// LocatePhotos snaps photos with an EXIF GPS position to the nearest
// track point. Clean GPX files carry no timestamps, so time-based
// matching is not available here.
func LocatePhotos(photos []Photo, points []geotrack.Point) []LocatedPhoto {
	var located []LocatedPhoto

	for _, photo := range photos {
		if photo.EXIF == nil || photo.EXIF.LatLon.IsNone() {
			continue
		}

		position := photo.EXIF.LatLon.Get()

		nearest, distance := findClosestPoint(points, position)
		if distance > maxSnapMeters {
			continue
		}

		lp := LocatedPhoto{
			URI:    photo.URI,
			LatLng: nearest,
		}
		if photo.EXIF.Time.IsSome() {
			lp.Taken = photo.EXIF.Time.Get().Format(time.RFC3339)
		}

		located = append(located, lp)
	}

	return located
}

func findClosestPoint(points []geotrack.Point, target geotrack.Point) (geotrack.Point, float64) {
	best := geotrack.Point{}
	bestDist := maxSnapMeters + 1

	for _, p := range points {
		d := geotrack.DistanceMeters(target.Lat, target.Lon, p.Lat, p.Lon)
		if d < bestDist {
			best, bestDist = p, d
		}
	}

	return best, bestDist
}
