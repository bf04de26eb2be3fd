package tour

import (
	"gitlab.com/begraf/tourenblick/geotrack"
)

// Metadata identifies one tour as displayed in the detail view.
// Immutable after creation.
type Metadata struct {
	Name        string
	Description string
	// Date is free display text, e.g. "July 2024" or "2024-07-13".
	Date        string
	GPXFileName string
	BasePath    string
}

// Tour bundles the parsed tracks of one tour file with its metadata.
type Tour struct {
	Metadata
	Tracks []geotrack.Track
}

// New builds a Tour from parsed track data.
func New(data *geotrack.TourData, gpxFileName, basePath string) *Tour {
	return &Tour{
		Metadata: Metadata{
			Name:        data.Name,
			Description: data.Description,
			Date:        data.Date,
			GPXFileName: gpxFileName,
			BasePath:    basePath,
		},
		Tracks: data.Tracks,
	}
}
