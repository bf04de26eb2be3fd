package serve

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gitlab.com/begraf/tourenblick/chart"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/images"
)

// ServeTours returns the category-grouped tour index consumed by the
// overview map.
func (api *serveAPI) ServeTours(c *gin.Context) {
	c.JSON(http.StatusOK, api.store.Categories)
}

// ServeTour returns one tour's detail data: metadata, stats, the track
// coordinates for the map and the located photos.
func (api *serveAPI) ServeTour(c *gin.Context) {
	id := c.Param("id")

	t, err := api.store.Load(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	stats := geotrack.ComputeStats(geotrack.Flatten(t.Tracks))

	descriptionHTML, _, err := api.descriptionHTML(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	markers := gin.H{}
	if start, finish, ok := chart.StartFinishMarkers(t.Tracks); ok {
		markers = gin.H{"start": start, "finish": finish}
	}

	c.JSON(
		http.StatusOK,
		gin.H{
			"id":          id,
			"name":        t.Name,
			"date":        t.Date,
			"description": descriptionHTML,
			"tracks":      t.Tracks,
			"markers":     markers,
			"photos":      api.locatedPhotos(id),
			"stats": gin.H{
				"distance_km":    stats.DistanceKm,
				"elevation_gain": stats.ElevationGain,
				"max_elevation":  stats.MaxElevation,
				"min_elevation":  stats.MinElevation,
			},
		},
	)
}

// locatedPhotos reads the photos.json written at build time. Tours
// without photos simply have none.
func (api *serveAPI) locatedPhotos(id string) []images.LocatedPhoto {
	data, err := os.ReadFile(filepath.Join(api.store.TourDirectory(id), "photos.json"))
	if err != nil {
		return nil
	}

	var located []images.LocatedPhoto
	if err := json.Unmarshal(data, &located); err != nil {
		return nil
	}

	return located
}

// ServeTourFile serves one file out of a tour's build directory, e.g.
// its GPX or a photo.
func (api *serveAPI) ServeTourFile(c *gin.Context) {
	id := c.Param("id")
	file := filepath.Base(c.Param("file"))

	if _, ok := api.store.Entry(id); !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	path := filepath.Join(api.store.TourDirectory(id), file)
	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.File(path)
}
