package filesystem

import (
	"os"
	"path/filepath"
	"time"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

func IsDirectory(path string) bool {
	fs, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fs.IsDir()
}

func FileModifiedTime(path string) (mod time.Time, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return
	}

	mod = fi.ModTime()

	return
}

// NewerThan reports whether the file at path was modified after ref.
// Missing files count as older.
func NewerThan(path string, ref time.Time) bool {
	mod, err := FileModifiedTime(path)
	if err != nil {
		return false
	}

	return mod.After(ref)
}
