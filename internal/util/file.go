package util

import (
	"os"
	"path/filepath"
	"strings"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// SafeName turns an arbitrary card or deck name into a filename-friendly slug.
func SafeName(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "\"", "")
	return r.Replace(name)
}

// CachePath joins a cache directory with a safe file name, creating the
// directory if needed.
func CachePath(dir, name string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, SafeName(name)), nil
}
