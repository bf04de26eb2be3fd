package images

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/option"
)

var ErrNoExif = errors.New("no EXIF data")

// EXIFData carries the photo metadata used to place a photo along a
// tour: the capture time and, when the camera recorded one, a GPS
// position.
type EXIFData struct {
	Time   option.Option[time.Time]
	LatLon option.Option[geotrack.Point]
}

// ReadEXIFFromFile extracts capture time and GPS position from a JPEG.
func ReadEXIFFromFile(path string) (*EXIFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoExif, err)
	}

	data := &EXIFData{
		Time:   option.None[time.Time](),
		LatLon: option.None[geotrack.Point](),
	}

	if ts, err := x.DateTime(); err == nil {
		data.Time = option.Some(ts)
	}

	if lat, lon, err := x.LatLong(); err == nil {
		data.LatLon = option.Some(geotrack.Point{Lat: lat, Lon: lon})
	}

	if data.Time.IsNone() && data.LatLon.IsNone() {
		return nil, ErrNoExif
	}

	return data, nil
}
