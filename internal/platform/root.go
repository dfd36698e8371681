package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/burrow/internal/config"
)

// ErrRootEmpty is returned when no projects directory is configured.
var ErrRootEmpty = errors.New("projects directory is not set")

// ResolveRoot turns a configured projects directory into the absolute,
// cleaned root handed to the store. A leading "~" is expanded.
func ResolveRoot(dir string) (string, error) {
	if dir == "" {
		return "", ErrRootEmpty
	}

	abs, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}

	// An existing root must be a directory; a missing one is created later.
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return "", fmt.Errorf("projects directory %s is not a directory", abs)
	}

	return filepath.Clean(abs), nil
}
