package geotrack

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gitlab.com/begraf/tourenblick/config"
)

// LoadTourFile reads a track file from disk and dispatches on the file
// extension. GPX files may carry several tracks and metadata; NMEA logs
// yield a single anonymous track named after the file.
func LoadTourFile(trackFilePath string) (*TourData, error) {
	data, err := os.ReadFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read track file: %w", err)
	}

	fileName := filepath.Base(trackFilePath)
	ext := strings.ToLower(filepath.Ext(trackFilePath))

	if slices.Contains(config.GPXExtensions(), ext) {
		return ParseGPX(data, fileName)
	}

	if slices.Contains(config.NMEAExtensions(), ext) {
		track, err := ParseNMEA(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}

		return &TourData{
			Name:   NameFromFileName(fileName),
			Tracks: []Track{track},
		}, nil
	}

	return nil, fmt.Errorf("unknown track extension '%s'", ext)
}
