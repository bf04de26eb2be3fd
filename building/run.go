package building

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gitlab.com/begraf/tourenblick/config"
	"gitlab.com/begraf/tourenblick/filesystem"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/images"
	"gitlab.com/begraf/tourenblick/tour"
)

type Options struct {
	ToursDirectory string
	BuildDirectory string
	SkipImages     bool

	// ConfirmTrash decides whether the raw GPX files consumed by a merge
	// get moved to the trash folder. Nil keeps them in place.
	ConfirmTrash func(tourID string, fileCount int) bool
}

// Build runs the full pipeline over the source tour tree: merge raw
// recordings into clean GPX files, refresh the polyline caches, publish
// GPX and photos into the build directory and write the tour index.
func Build(opts Options) error {
	if !filesystem.IsDirectory(opts.ToursDirectory) {
		return fmt.Errorf("tours directory '%s' does not exist", opts.ToursDirectory)
	}

	if err := filesystem.CreateDirectoryIfNotExists(opts.BuildDirectory); err != nil {
		return fmt.Errorf("could not ensure build directory: %w", err)
	}

	categories, err := filesystem.SubDirectories(opts.ToursDirectory)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	var index []tour.Category

	for _, categoryFolder := range categories {
		categoryPath := filepath.Join(opts.ToursDirectory, categoryFolder)

		tourIDs, err := filesystem.SubDirectories(categoryPath)
		if err != nil {
			return fmt.Errorf("list tours in %s: %w", categoryFolder, err)
		}

		var indexTours []indexTour

		for _, tourID := range tourIDs {
			tourPath := filepath.Join(categoryPath, tourID)

			if err := processTour(opts, tourPath, tourID); err != nil {
				return fmt.Errorf("process tour %s: %w", tourID, err)
			}

			entry, ok, err := publishTour(opts, tourPath, tourID)
			if err != nil {
				return fmt.Errorf("publish tour %s: %w", tourID, err)
			}
			if ok {
				indexTours = append(indexTours, entry)
			}
		}

		if len(indexTours) > 0 {
			index = append(index, makeCategory(categoryFolder, indexTours))
		}
	}

	indexData, err := json.MarshalIndent(index, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tour index: %w", err)
	}

	indexPath := filepath.Join(opts.BuildDirectory, config.IndexFileName())
	if err := os.WriteFile(indexPath, indexData, 0o666); err != nil {
		return fmt.Errorf("write tour index: %w", err)
	}

	log.Printf("indexed %d categories\n", len(index))

	return nil
}

// processTour ensures the tour's clean GPX and polyline cache exist and
// are current.
func processTour(opts Options, tourPath, tourID string) error {
	cleanPath := filepath.Join(tourPath, tour.GPXFileName(tourID))
	cachePath := filepath.Join(tourPath, config.PolylineCacheFileName())

	if _, err := os.Stat(cleanPath); errors.Is(err, os.ErrNotExist) {
		rawFiles, err := gatherRawFiles(tourPath, cleanPath)
		if err != nil {
			return err
		}

		if len(rawFiles) == 0 {
			return nil
		}

		log.Printf("generating GPX for %s (merging %d files)\n", tourID, len(rawFiles))

		data, err := MergeRawGPX(rawFiles, tourID)
		if err != nil {
			return err
		}

		if err := os.WriteFile(cleanPath, data, 0o666); err != nil {
			return fmt.Errorf("write clean GPX: %w", err)
		}

		if opts.ConfirmTrash != nil && opts.ConfirmTrash(tourID, len(rawFiles)) {
			if err := trashRawFiles(opts.ToursDirectory, tourID, rawFiles); err != nil {
				log.Printf("could not trash raw files of %s: %v\n", tourID, err)
			}
		}
	}

	if CacheIsStale(cleanPath, cachePath) {
		if err := WritePolylineCache(cleanPath, cachePath); err != nil {
			return err
		}
	}

	return nil
}

func gatherRawFiles(tourPath, cleanPath string) ([]string, error) {
	extensions := append(config.GPXExtensions(), config.NMEAExtensions()...)

	files, err := filesystem.GatherFiles(tourPath, extensions)
	if err != nil {
		return nil, err
	}

	var rawFiles []string
	for _, f := range files {
		if f != cleanPath {
			rawFiles = append(rawFiles, f)
		}
	}

	return rawFiles, nil
}

func trashRawFiles(toursDirectory, tourID string, rawFiles []string) error {
	trashDir := filepath.Join(toursDirectory, ".trash")
	if err := filesystem.CreateDirectoryIfNotExists(trashDir); err != nil {
		return err
	}

	for _, f := range rawFiles {
		dst := filepath.Join(trashDir, fmt.Sprintf("%s_%s", tourID, filepath.Base(f)))
		if err := os.Rename(f, dst); err != nil {
			return err
		}
	}

	return nil
}

// publishTour copies the clean GPX and photos into the build directory
// and returns the tour's index entry. Tours without a clean GPX or cache
// are skipped.
func publishTour(opts Options, tourPath, tourID string) (indexTour, bool, error) {
	cleanPath := filepath.Join(tourPath, tour.GPXFileName(tourID))
	cachePath := filepath.Join(tourPath, config.PolylineCacheFileName())

	if _, err := os.Stat(cleanPath); err != nil {
		return indexTour{}, false, nil
	}

	cache, err := readPolylineCache(cachePath)
	if err != nil {
		return indexTour{}, false, nil
	}

	dstDir := filepath.Join(opts.BuildDirectory, tourID)
	if err := filesystem.CreateDirectoryIfNotExists(dstDir); err != nil {
		return indexTour{}, false, err
	}

	dstGPX := filepath.Join(dstDir, tour.GPXFileName(tourID))
	if sourceNewer(cleanPath, dstGPX) {
		if err := filesystem.Copy(cleanPath, dstGPX); err != nil {
			return indexTour{}, false, fmt.Errorf("copy GPX: %w", err)
		}
		log.Printf("copied %s\n", tour.GPXFileName(tourID))
	}

	if !opts.SkipImages {
		if err := publishPhotos(tourPath, dstDir, tourID, cleanPath); err != nil {
			return indexTour{}, false, err
		}
	}

	title, dateStr, err := tourDisplayMetadata(cleanPath, tourPath, tourID)
	if err != nil {
		return indexTour{}, false, err
	}

	return makeIndexTour(tourID, title, dateStr, cache), true, nil
}

func sourceNewer(src, dst string) bool {
	dstMod, err := filesystem.FileModifiedTime(dst)
	if err != nil {
		return true
	}

	return filesystem.NewerThan(src, dstMod)
}

// tourDisplayMetadata reads title and date from the clean GPX, applying
// the optional tour.yaml override.
func tourDisplayMetadata(cleanPath, tourPath, tourID string) (string, string, error) {
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", "", err
	}

	tourData, err := geotrack.ParseGPX(data, tour.GPXFileName(tourID))
	if err != nil {
		return "", "", err
	}

	title, dateStr := tourData.Name, tourData.Date

	override, err := readTourOverride(filepath.Join(tourPath, config.TourYAMLFileName()))
	if err != nil {
		return "", "", err
	}

	if override.Title != "" {
		title = override.Title
	}
	if override.Date != "" {
		dateStr = override.Date
	}

	return title, dateStr, nil
}

// publishPhotos copies the tour photos, writes thumbnails and the
// located-photos JSON used by the detail map.
func publishPhotos(tourPath, dstDir, tourID, cleanPath string) error {
	var photos []images.Photo

	for _, name := range config.PhotoFileNames() {
		srcPhoto := filepath.Join(tourPath, name)
		if _, err := os.Stat(srcPhoto); err != nil {
			continue
		}

		dstPhoto := filepath.Join(dstDir, name)
		if sourceNewer(srcPhoto, dstPhoto) {
			if err := filesystem.Copy(srcPhoto, dstPhoto); err != nil {
				return fmt.Errorf("copy photo: %w", err)
			}

			thumbName := "thumb_" + name
			if err := images.WriteThumbnail(srcPhoto, filepath.Join(dstDir, thumbName), config.DefaultThumbWidth()); err != nil {
				log.Printf("thumbnail for %s/%s: %v\n", tourID, name, err)
			}
		}

		exifData, err := images.ReadEXIFFromFile(srcPhoto)
		if err != nil {
			if !errors.Is(err, images.ErrNoExif) {
				log.Printf("EXIF for %s/%s: %v\n", tourID, name, err)
			}
			continue
		}

		photos = append(photos, images.Photo{
			URI:  fmt.Sprintf("tours/%s/%s", tourID, name),
			EXIF: exifData,
		})
	}

	if len(photos) == 0 {
		return nil
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return err
	}

	tourData, err := geotrack.ParseGPX(data, tour.GPXFileName(tourID))
	if err != nil {
		// A tour without elevation data still publishes its photos list.
		if !errors.Is(err, geotrack.ErrEmptyTrack) {
			return err
		}
		tourData = &geotrack.TourData{}
	}

	located := images.LocatePhotos(photos, geotrack.Flatten(tourData.Tracks))

	locatedData, err := json.Marshal(located)
	if err != nil {
		return fmt.Errorf("encode located photos: %w", err)
	}

	return os.WriteFile(filepath.Join(dstDir, "photos.json"), locatedData, 0o666)
}
