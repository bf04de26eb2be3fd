package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GatherFiles lists the regular files in a directory carrying one of the
// given extensions, sorted by name.
func GatherFiles(root string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	matches := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range extensions {
			if e == ext {
				return true
			}
		}
		return false
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !matches(entry.Name()) {
			continue
		}

		paths = append(paths, filepath.Join(root, entry.Name()))
	}

	sort.Strings(paths)

	return paths, nil
}

// SubDirectories lists the non-hidden directories under root, sorted by
// name.
func SubDirectories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}
