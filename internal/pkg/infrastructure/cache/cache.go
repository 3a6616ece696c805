// Package cache resolves the local directory where downloaded tables are kept.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DirEnvVar string = "SSNO_CACHE_DIR"
	appDir    string = "ssno"
)

// Dir returns the cache directory, creating it on first use. SSNO_CACHE_DIR
// takes precedence over the user cache directory of the platform.
func Dir() (string, error) {
	dir := os.Getenv(DirEnvVar)

	if dir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("no cache directory available: %w", err)
		}
		dir = filepath.Join(userCache, appDir)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create cache dir %s: %w", dir, err)
	}

	return dir, nil
}

// Path returns the full cache path of a file name.
func Path(filename string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(filename)), nil
}

// Remove deletes a cached file if it exists.
func Remove(filename string) error {
	path, err := Path(filename)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
