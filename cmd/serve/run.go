package serve

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/tour"
	"gitlab.com/begraf/tourenblick/view"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	buildDirectory := config.BuildDirectory()

	store, err := tour.NewStore(buildDirectory)
	if err != nil {
		return fmt.Errorf("no tour index in %s: %w", buildDirectory, err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := newServeAPI(store)
	r.GET("/", api.ServeOverview)
	r.GET("/tour/:id", api.ServeDetailPage)
	r.GET("/tours/:id/:file", api.ServeTourFile)
	r.GET("/api/tours", api.ServeTours)
	r.GET("/api/tour/:id", api.ServeTour)
	r.GET("/api/tour/:id/chart.svg", api.ServeChartSVG)
	r.GET("/api/tour/:id/highlight", api.ServeHighlight)

	r.Static("/static", "./res/static")

	return r.Run(config.ServeAddress())
}

type serveAPI struct {
	store   *tour.Store
	manager *view.Manager
	loader  view.Loader
}

func newServeAPI(store *tour.Store) *serveAPI {
	return &serveAPI{
		store:   store,
		manager: &view.Manager{},
		loader:  &view.StoreLoader{Store: store},
	}
}

// abortWithError logs the failure and maps it onto the client-facing
// status and message. Nothing is swallowed silently.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	log.Println(err)

	switch {
	case errors.Is(err, view.ErrFetch):
		c.String(http.StatusNotFound, "tour not found")
	case errors.Is(err, geotrack.ErrParse):
		c.String(http.StatusUnprocessableEntity, "could not parse tour file")
	case errors.Is(err, geotrack.ErrEmptyTrack):
		c.String(http.StatusUnprocessableEntity, "tour has no usable track points")
	case errors.Is(err, view.ErrSuperseded):
		c.String(http.StatusConflict, "load superseded")
	default:
		c.String(http.StatusInternalServerError, "error")
	}
}
