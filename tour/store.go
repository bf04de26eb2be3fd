package tour

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/geotrack"
)

// Store reads a built tour directory: the category-grouped index plus
// one subdirectory per tour holding the clean GPX and its photos.
type Store struct {
	Directory  string
	Categories []Category
}

// NewStore loads the tour index from the given build directory.
func NewStore(directory string) (*Store, error) {
	data, err := os.ReadFile(filepath.Join(directory, config.IndexFileName()))
	if err != nil {
		return nil, fmt.Errorf("read tour index: %w", err)
	}

	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decode tour index: %w", err)
	}

	return &Store{
		Directory:  directory,
		Categories: categories,
	}, nil
}

// Entry looks up an index entry by tour ID.
func (s *Store) Entry(id string) (Entry, bool) {
	for _, category := range s.Categories {
		for _, entry := range category.Tours {
			if entry.ID == id {
				return entry, true
			}
		}
	}

	return Entry{}, false
}

// GPXFileName returns the canonical clean GPX file name of a tour.
func GPXFileName(id string) string {
	return id + ".gpx"
}

// GPXPath returns the on-disk path of a tour's clean GPX file.
func (s *Store) GPXPath(id string) string {
	return filepath.Join(s.Directory, id, GPXFileName(id))
}

// TourDirectory returns the on-disk directory of a tour.
func (s *Store) TourDirectory(id string) string {
	return filepath.Join(s.Directory, id)
}

// Load parses a tour's clean GPX file into a Tour.
func (s *Store) Load(id string) (*Tour, error) {
	data, err := os.ReadFile(s.GPXPath(id))
	if err != nil {
		return nil, fmt.Errorf("read tour %s: %w", id, err)
	}

	tourData, err := geotrack.ParseGPX(data, GPXFileName(id))
	if err != nil {
		return nil, err
	}

	return New(tourData, GPXFileName(id), "tours/"+id), nil
}
