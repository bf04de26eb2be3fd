package serve

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gitlab.com/begraf/tourenblick/chart"
	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/tour"
	"gitlab.com/begraf/tourenblick/view"
)

// sessionFor returns the active session and its projection for the
// requested viewport when the session already shows the requested tour.
// Any other tour triggers a fresh load through the manager.
func (api *serveAPI) sessionFor(ctx context.Context, id string, width, height int) (*view.Session, *chart.Chart, error) {
	if s := api.manager.Active(); s != nil && s.Tour.GPXFileName == tour.GPXFileName(id) {
		return s, s.EnsureViewport(width, height), nil
	}

	s, err := api.manager.LoadTour(ctx, api.loader, id, width, height)
	if err != nil {
		return nil, nil, err
	}

	return s, s.Chart(), nil
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}

	return v
}

// ServeChartSVG renders the elevation chart for the requested viewport.
func (api *serveAPI) ServeChartSVG(c *gin.Context) {
	id := c.Param("id")
	width := intQuery(c, "w", config.DefaultChartWidth())
	height := intQuery(c, "h", config.DefaultChartHeight())

	_, projected, err := api.sessionFor(c.Request.Context(), id, width, height)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(projected.SVG))
}

// ServeHighlight resolves a pointer x position on the chart. Positions
// without a match return an empty object, which the frontend treats as
// "clear highlight and marker".
func (api *serveAPI) ServeHighlight(c *gin.Context) {
	id := c.Param("id")
	width := intQuery(c, "w", config.DefaultChartWidth())
	height := intQuery(c, "h", config.DefaultChartHeight())

	x, err := strconv.ParseFloat(c.Query("x"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "missing or malformed x")
		return
	}

	s, _, err := api.sessionFor(c.Request.Context(), id, width, height)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h := s.Highlight(x)
	if h == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	marker := s.Marker()

	c.JSON(
		http.StatusOK,
		gin.H{
			"x":           h.Point.X,
			"y":           h.Point.Y,
			"elevation":   h.Point.Elevation,
			"distance_km": h.Point.DistanceKm,
			"track":       h.TrackNumber,
			"color":       h.Color,
			"tooltip":     h.Tooltip(),
			"marker": gin.H{
				"latlng": []float64{marker.Lat, marker.Lon},
				"color":  marker.Color,
			},
		},
	)
}
