package building

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/tkrajina/gpxgo/gpx"
	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/util/dates"
)

// IsRaceTour reports whether a tour ID marks a race. Races keep their
// precise date and get a flag prefix in the title.
func IsRaceTour(tourID string) bool {
	return strings.HasPrefix(tourID, "_")
}

// MergeRawGPX combines several raw recordings into one clean tour file:
// a single GPX document with one <trk> per source track, carrying only
// latitude, longitude and elevation. NMEA logs contribute a single
// anonymous track each. Timestamps and vendor extensions are dropped on
// purpose; published files stay anonymous.
func MergeRawGPX(rawFilePaths []string, tourID string) ([]byte, error) {
	var sources []*gpx.GPX
	for _, p := range rawFilePaths {
		g, err := parseRawFile(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, g)
	}

	recordedAt := earliestDate(sources)
	title := tourTitle(tourID, recordedAt)

	clean := &gpx.GPX{
		Version:  "1.1",
		Creator:  "tourenblick",
		Name:     title,
		Keywords: displayDate(tourID, recordedAt),
	}

	for _, source := range sources {
		for _, track := range source.Tracks {
			name := strings.TrimSpace(track.Name)
			if name == "" {
				name = title
			}

			cleanTrack := gpx.GPXTrack{Name: name}

			for _, segment := range track.Segments {
				cleanSegment := gpx.GPXTrackSegment{}
				for _, p := range segment.Points {
					cleanSegment.Points = append(cleanSegment.Points, gpx.GPXPoint{
						Point: gpx.Point{
							Latitude:  p.Latitude,
							Longitude: p.Longitude,
							Elevation: p.Elevation,
						},
					})
				}
				cleanTrack.Segments = append(cleanTrack.Segments, cleanSegment)
			}

			clean.Tracks = append(clean.Tracks, cleanTrack)
		}
	}

	return clean.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
}

// parseRawFile reads one raw recording. GPX files parse natively; NMEA
// logs go through the track loader and come back as a GPX document with
// a single track.
func parseRawFile(p string) (*gpx.GPX, error) {
	ext := strings.ToLower(filepath.Ext(p))

	if slices.Contains(config.NMEAExtensions(), ext) {
		tourData, err := geotrack.LoadTourFile(p)
		if err != nil {
			return nil, fmt.Errorf("parse raw NMEA %s: %w", p, err)
		}

		return tracksToGPX(tourData.Tracks), nil
	}

	g, err := gpx.ParseFile(p)
	if err != nil {
		return nil, fmt.Errorf("parse raw GPX %s: %w", p, err)
	}

	return g, nil
}

func tracksToGPX(tracks []geotrack.Track) *gpx.GPX {
	g := &gpx.GPX{}

	for _, track := range tracks {
		segment := gpx.GPXTrackSegment{}
		for _, p := range track {
			segment.Points = append(segment.Points, gpx.GPXPoint{
				Point: gpx.Point{
					Latitude:  p.Lat,
					Longitude: p.Lon,
					Elevation: *gpx.NewNullableFloat64(p.Elevation),
				},
			})
		}

		g.Tracks = append(g.Tracks, gpx.GPXTrack{
			Segments: []gpx.GPXTrackSegment{segment},
		})
	}

	return g
}

// earliestDate scans metadata times first, then track point timestamps.
func earliestDate(sources []*gpx.GPX) *time.Time {
	var earliest *time.Time

	consider := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if earliest == nil || t.Before(*earliest) {
			earliest = &t
		}
	}

	for _, g := range sources {
		if g.Time != nil {
			consider(*g.Time)
		}

		for _, track := range g.Tracks {
			for _, segment := range track.Segments {
				for _, p := range segment.Points {
					consider(p.Timestamp)
				}
			}
		}
	}

	return earliest
}

func tourTitle(tourID string, recordedAt *time.Time) string {
	if !IsRaceTour(tourID) {
		return tourID
	}

	if recordedAt != nil {
		return fmt.Sprintf("🏁 %d - %s", recordedAt.Year(), tourID)
	}

	return fmt.Sprintf("🏁 %s", tourID)
}

func displayDate(tourID string, recordedAt *time.Time) string {
	if recordedAt == nil {
		return ""
	}

	if IsRaceTour(tourID) {
		return recordedAt.Format(dates.RaceLayout)
	}

	return monday.Format(*recordedAt, dates.TourLayout, monday.LocaleEnUS)
}
