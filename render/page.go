package render

import (
	"bytes"
	"fmt"
	"html"

	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/tour"
)

// DetailPage assembles the detail view for one tour: title, date,
// description, the map mount point and the inline elevation chart. The
// map and chart interactivity live in the static frontend; the emitted
// script blocks only hand them their data sources.
func DetailPage(id string, t *tour.Tour, stats geotrack.Stats, descriptionHTML, chartSVG string) string {
	var buf bytes.Buffer

	title := html.EscapeString(t.Name)

	_, _ = buf.WriteString("<!DOCTYPE html>\n<html><head>")
	_, _ = buf.WriteString(fmt.Sprintf("<title>%s</title>", title))
	_, _ = buf.WriteString(`<meta charset="utf-8"><link rel="stylesheet" href="/static/style.css">`)
	_, _ = buf.WriteString(`<script src="/static/tourenblick.js"></script>`)
	_, _ = buf.WriteString("</head><body>")

	_, _ = buf.WriteString(fmt.Sprintf("<h1>%s</h1>", title))
	if t.Date != "" {
		_, _ = buf.WriteString(fmt.Sprintf(`<p class="tour-date">%s</p>`, html.EscapeString(t.Date)))
	}

	if descriptionHTML != "" {
		_, _ = buf.WriteString(fmt.Sprintf(`<div class="tour-description">%s</div>`, descriptionHTML))
	}

	_, _ = buf.WriteString(`<dl class="tour-stats">`)
	_, _ = buf.WriteString(fmt.Sprintf("<dt>Distance</dt><dd>%.1f km</dd>", stats.DistanceKm))
	_, _ = buf.WriteString(fmt.Sprintf("<dt>Elevation gain</dt><dd>%.0f m</dd>", stats.ElevationGain))
	_, _ = buf.WriteString(fmt.Sprintf("<dt>Max elevation</dt><dd>%.0f m</dd>", stats.MaxElevation))
	_, _ = buf.WriteString("</dl>")

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="gpx-map" id="map-detail">
		<script>
		(function () {
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				mountDetailMap(mapContainer, { 'dataURL': '/api/tour/%s' });
			});
		})();
		</script></div>`,
		id,
	))

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="elevation-chart" id="chart-detail" data-highlight-url="/api/tour/%s/highlight">%s</div>`,
		id, chartSVG))

	_, _ = buf.WriteString("</body></html>")

	return buf.String()
}

// OverviewPage assembles the landing page: the category picker and the
// overview map mount point fed by the tour index.
func OverviewPage(categories []tour.Category) string {
	var buf bytes.Buffer

	_, _ = buf.WriteString("<!DOCTYPE html>\n<html><head>")
	_, _ = buf.WriteString("<title>Tours</title>")
	_, _ = buf.WriteString(`<meta charset="utf-8"><link rel="stylesheet" href="/static/style.css">`)
	_, _ = buf.WriteString(`<script src="/static/tourenblick.js"></script>`)
	_, _ = buf.WriteString("</head><body>")

	_, _ = buf.WriteString(`<div class="gpx-map" id="map-overview">
		<script>
		(function () {
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				mountOverviewMap(mapContainer, { 'dataURL': '/api/tours' });
			});
		})();
		</script></div>`)

	_, _ = buf.WriteString(`<nav class="categories">`)
	for _, category := range categories {
		_, _ = buf.WriteString(fmt.Sprintf("<h2>%s</h2><ul>", html.EscapeString(category.Category)))
		for _, entry := range category.Tours {
			_, _ = buf.WriteString(fmt.Sprintf(`<li><a href="/tour/%s">%s</a></li>`,
				entry.ID, html.EscapeString(entry.Title)))
		}
		_, _ = buf.WriteString("</ul>")
	}
	_, _ = buf.WriteString("</nav>")

	_, _ = buf.WriteString("</body></html>")

	return buf.String()
}
