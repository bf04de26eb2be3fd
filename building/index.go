package building

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gitlab.com/begraf/tourenblick/tour"
	"gitlab.com/begraf/tourenblick/util/dates"
	"gopkg.in/yaml.v2"
)

var (
	categoryPrefixPattern = regexp.MustCompile(`^\d+[\s_-]*`)
	yearPattern           = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// CleanCategoryName strips the ordering prefix from a category folder
// name: "10 Bas Valais" becomes "Bas Valais".
func CleanCategoryName(folderName string) string {
	return categoryPrefixPattern.ReplaceAllString(folderName, "")
}

// indexTour is one tour during index assembly, before the internal sort
// keys are discarded.
type indexTour struct {
	entry        tour.Entry
	isRace       bool
	maxElevation int
	sortTS       float64
}

// tourOverride is the optional per-tour metadata override read from
// tour.yaml.
type tourOverride struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

func readTourOverride(path string) (tourOverride, error) {
	var override tourOverride

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return override, nil
		}
		return override, err
	}

	if err := yaml.Unmarshal(data, &override); err != nil {
		return override, fmt.Errorf("decode tour override: %w", err)
	}

	return override, nil
}

// decorateRaceTitle adds the race prefix to a title that lacks it,
// including the year when the date string carries one.
func decorateRaceTitle(title, dateStr string) string {
	if strings.Contains(title, "🏁") {
		return title
	}

	if year := yearPattern.FindString(dateStr); year != "" {
		return fmt.Sprintf("🏁 %s - %s", year, title)
	}

	return fmt.Sprintf("🏁 %s", title)
}

// sortIndexTours orders one category for display: regular tours first by
// maximum elevation descending, races last by date descending, titles as
// the final tie-break.
func sortIndexTours(tours []indexTour) {
	sort.Slice(tours, func(i, j int) bool {
		a, b := tours[i], tours[j]

		if a.isRace != b.isRace {
			return !a.isRace
		}

		if a.isRace {
			if a.sortTS != b.sortTS {
				return a.sortTS > b.sortTS
			}
		} else if a.maxElevation != b.maxElevation {
			return a.maxElevation > b.maxElevation
		}

		return a.entry.Title < b.entry.Title
	})
}

func makeIndexTour(tourID, title, dateStr string, cache polylineCache) indexTour {
	isRace := IsRaceTour(tourID)

	title = strings.TrimSpace(title)
	if title == "" {
		title = tourID
	}

	if isRace {
		title = decorateRaceTitle(title, dateStr)
	}

	return indexTour{
		entry: tour.Entry{
			ID:              tourID,
			Title:           title,
			SummaryPolyline: cache.SummaryPolyline,
		},
		isRace:       isRace,
		maxElevation: cache.MaxElevation,
		sortTS:       dates.SortTimestamp(dateStr),
	}
}

func makeCategory(folderName string, tours []indexTour) tour.Category {
	sortIndexTours(tours)

	category := tour.Category{
		Category: CleanCategoryName(folderName),
		Tours:    make([]tour.Entry, len(tours)),
	}
	for i, t := range tours {
		category.Tours[i] = t.entry
	}

	return category
}
