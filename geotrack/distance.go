package geotrack

import "github.com/jftuga/geodist"

// DistanceMeters returns the great-circle distance between two WGS84
// coordinates in meters, computed with the Haversine formula on a mean
// earth radius of 6371 km. NaN coordinates yield a NaN distance.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: lat1, Lon: lon1},
		geodist.Coord{Lat: lat2, Lon: lon2},
	)

	return km * 1000
}
