package serve

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/render"
)

func (api *serveAPI) ServeOverview(c *gin.Context) {
	page := render.OverviewPage(api.store.Categories)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (api *serveAPI) ServeDetailPage(c *gin.Context) {
	id := c.Param("id")

	s, projected, err := api.sessionFor(c.Request.Context(), id, config.DefaultChartWidth(), config.DefaultChartHeight())
	if err != nil {
		abortWithError(c, err)
		return
	}

	descriptionHTML, frontMatter, err := api.descriptionHTML(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Front matter in description.md may override the displayed title
	// and date without touching the session's tour.
	display := *s.Tour
	if title, ok := frontMatter["title"].(string); ok && title != "" {
		display.Name = title
	}
	if date, ok := frontMatter["date"].(string); ok && date != "" {
		display.Date = date
	}

	page := render.DetailPage(id, &display, s.Stats, descriptionHTML, projected.SVG)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// descriptionHTML renders the tour's optional markdown description.
// A missing description file is not an error.
func (api *serveAPI) descriptionHTML(id string) (string, map[string]interface{}, error) {
	source, err := os.ReadFile(filepath.Join(api.store.TourDirectory(id), config.DescriptionFileName()))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, err
	}

	return render.DescriptionHTML(source)
}
