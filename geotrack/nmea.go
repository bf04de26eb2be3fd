package geotrack

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/adrianmo/go-nmea"
)

// ParseNMEA reads a NMEA sentence log and extracts a single track from
// its GGA fixes, the only sentence type carrying altitude. Fixes with an
// invalid quality indicator are skipped.
func ParseNMEA(r io.Reader) (Track, error) {
	scanner := bufio.NewScanner(r)

	var track Track
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		if sentence.DataType() != nmea.TypeGGA {
			continue
		}

		gga := sentence.(nmea.GGA)
		if gga.FixQuality == nmea.Invalid {
			continue
		}

		track = append(track, Point{
			Lat:       gga.Latitude,
			Lon:       gga.Longitude,
			Elevation: gga.Altitude,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(track) == 0 {
		return nil, ErrEmptyTrack
	}

	return track, nil
}
