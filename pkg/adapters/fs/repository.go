// Package fs stores projects as files under a root directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/burrow/pkg/core"
)

// Repository implements core.Repository using the filesystem.
type Repository struct {
	Root   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Root         string
	MustExist    bool
	Logger       *slog.Logger
	ErrorHandler func(error) // Receives watcher errors. Defaults to logging.
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	config.Root = filepath.Clean(config.Root)
	return &Repository{
		Root:   config.Root,
		config: config,
	}
}

// Initialize makes sure the root directory exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Root)
		if os.IsNotExist(err) {
			return fmt.Errorf("projects directory does not exist: %s", r.Root)
		}
		if err != nil {
			return fmt.Errorf("failed to stat projects directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("projects directory is not a directory: %s", r.Root)
		}
		return nil
	}

	if err := os.MkdirAll(r.Root, 0755); err != nil {
		return fmt.Errorf("failed to create projects directory: %w", err)
	}
	return nil
}

// Path resolves the file backing a project name.
func (r *Repository) Path(name string) string {
	return core.ResolvePath(r.Root, name, core.ProjectExtension)
}

// Exists reports whether a regular project file is stored under name.
// Directories at the project path do not count.
func (r *Repository) Exists(ctx context.Context, name string) (bool, error) {
	info, err := os.Stat(r.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat project: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Ensure creates the project file with an initial skeleton when missing.
//
// Workflow:
//  1. Stat the target. A directory there is a conflict, a file is left alone.
//  2. Create the namespace directories (idempotent).
//  3. Write the skeleton atomically.
//
// Directories created in step 2 are not rolled back if step 3 fails.
func (r *Repository) Ensure(ctx context.Context, name string) (bool, error) {
	path := r.Path(name)

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, &core.ProjectError{Op: "edit", Name: name, Path: path, Err: core.ErrProjectFileIsADirectory}
	case err == nil:
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("failed to stat project: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := newSkeleton(name)
	if err != nil {
		return false, fmt.Errorf("failed to render skeleton: %w", err)
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write project: %w", err)
	}

	r.debug("project file created", "name", name, "path", path)
	return true, nil
}

// Delete removes a project file, then every namespace directory the removal
// left empty, walking up toward the root without ever removing it.
func (r *Repository) Delete(ctx context.Context, name string) error {
	path := r.Path(name)

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return &core.ProjectError{Op: "remove", Name: name, Err: core.ErrProjectDoesNotExist}
	}
	if err != nil {
		return fmt.Errorf("failed to stat project: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove project: %w", err)
	}
	r.debug("project file removed", "name", name, "path", path)

	return r.pruneEmptyDirs(filepath.Dir(path))
}

// pruneEmptyDirs removes dir and its ancestors while they are empty and
// strictly inside the root. A directory reached through a symlink, in any
// component below the root, lives elsewhere and stops the walk.
func (r *Repository) pruneEmptyDirs(dir string) error {
	rootID, err := canonical(r.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve projects directory: %w", err)
	}

	for r.isInsideRoot(dir) {
		info, err := os.Lstat(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("failed to inspect namespace: %w", err)
		}
		if !info.IsDir() {
			return nil
		}

		physical, err := r.isPhysicalChild(rootID, dir)
		if err != nil {
			return fmt.Errorf("failed to inspect namespace: %w", err)
		}
		if !physical {
			r.debug("namespace is behind a symlink, keeping it", "path", dir)
			return nil
		}

		empty, err := isEmptyDir(dir)
		if err != nil {
			return fmt.Errorf("failed to inspect namespace: %w", err)
		}
		if !empty {
			return nil
		}

		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("failed to remove empty namespace: %w", err)
		}
		r.debug("empty namespace removed", "path", dir)

		dir = filepath.Dir(dir)
	}
	return nil
}

// isInsideRoot reports whether path is a strict descendant of the root.
func (r *Repository) isInsideRoot(path string) bool {
	rel, err := filepath.Rel(r.Root, path)
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}

// isPhysicalChild reports whether dir resolves to the same place as its
// textual position under the root, i.e. no component between them is a
// symlink.
func (r *Repository) isPhysicalChild(rootID, dir string) (bool, error) {
	rel, err := filepath.Rel(r.Root, dir)
	if err != nil {
		return false, err
	}
	id, err := canonical(dir)
	if err != nil {
		return false, err
	}
	return id == filepath.Join(rootID, rel), nil
}

func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (r *Repository) debug(msg string, args ...any) {
	if r.config.Logger != nil {
		r.config.Logger.Debug(msg, args...)
	}
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
