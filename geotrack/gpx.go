package geotrack

import (
	"fmt"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"
)

// TourData is the parsed contents of a single tour file: the retained
// tracks plus display metadata.
type TourData struct {
	Name        string
	Description string
	// Date is the free-text <keywords> field; the build pipeline writes a
	// display date string into it.
	Date   string
	Tracks []Track
}

// ParseGPX reads GPX XML and extracts every <trk> as one Track. Track
// points without a parseable <ele> child are dropped; tracks left empty
// after filtering are dropped as well. When nothing remains the file is
// unusable and the call fails with ErrEmptyTrack.
//
// The tour name is taken from <metadata><name>, then from the first
// named <trk>, then derived from the file name.
func ParseGPX(data []byte, fileName string) (*TourData, error) {
	gpxData, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	tourData := &TourData{
		Name:        strings.TrimSpace(gpxData.Name),
		Description: gpxData.Description,
		Date:        gpxData.Keywords,
	}

	if tourData.Name == "" {
		for _, track := range gpxData.Tracks {
			if name := strings.TrimSpace(track.Name); name != "" {
				tourData.Name = name
				break
			}
		}
	}

	if tourData.Name == "" {
		tourData.Name = NameFromFileName(fileName)
	}

	for _, track := range gpxData.Tracks {
		points := readTrackPoints(track)
		if len(points) > 0 {
			tourData.Tracks = append(tourData.Tracks, points)
		}
	}

	if len(tourData.Tracks) == 0 {
		return nil, fmt.Errorf("%s: %w", fileName, ErrEmptyTrack)
	}

	return tourData, nil
}

func readTrackPoints(track gpx.GPXTrack) Track {
	var points Track

	for _, segment := range track.Segments {
		for _, p := range segment.Points {
			if p.Elevation.Null() {
				continue
			}

			points = append(points, Point{
				Lat:       p.Latitude,
				Lon:       p.Longitude,
				Elevation: p.Elevation.Value(),
			})
		}
	}

	return points
}

// NameFromFileName derives a display name from a track file name by
// stripping the extension and replacing underscores.
func NameFromFileName(fileName string) string {
	name := strings.TrimSuffix(fileName, ".gpx")
	return strings.ReplaceAll(name, "_", " ")
}
