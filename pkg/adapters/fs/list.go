package fs

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aretw0/burrow/pkg/core"
)

// visitFunc is called by walk for every directory it descends into and every
// regular file it finds. rel is the slash-separated path relative to the root.
type visitFunc func(full, rel string, isDir bool)

// List walks the root and reports every regular file as a project.
//
// Strategy:
//  1. Directories and symlinks to directories are descended into.
//  2. Each directory is identified by its canonical path. Identities on the
//     current descent path are kept in a visited set; meeting one again is a
//     symlink cycle and the directory is skipped.
//  3. Symlinks to anything but a directory, broken symlinks, special files
//     and temp files are ignored.
//
// A directory reachable through two distinct non-cyclic paths (e.g. a sibling
// symlink) is listed under both paths.
func (r *Repository) List(ctx context.Context) ([]core.Project, error) {
	var projects []core.Project

	err := r.walkRoot(ctx, func(full, rel string, isDir bool) {
		if isDir {
			return
		}
		projects = append(projects, core.Project{Name: projectName(rel), Path: full})
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *Repository) walkRoot(ctx context.Context, visit visitFunc) error {
	rootID, err := canonical(r.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve projects directory: %w", err)
	}

	visited := map[string]struct{}{rootID: {}}
	if err := r.walk(ctx, r.Root, "", visited, visit); err != nil {
		return fmt.Errorf("failed to walk projects directory: %w", err)
	}
	return nil
}

func (r *Repository) walk(ctx context.Context, dir, rel string, visited map[string]struct{}, visit visitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		entryRel := path.Join(rel, entry.Name())

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil {
				r.debug("skipping broken symlink", "path", full, "error", err)
				continue
			}
			if !info.IsDir() {
				r.debug("skipping symlink to non-directory", "path", full)
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			id, err := canonical(full)
			if err != nil {
				r.debug("skipping unresolvable directory", "path", full, "error", err)
				continue
			}
			if _, seen := visited[id]; seen {
				r.debug("symlink cycle detected", "path", full, "target", id)
				continue
			}

			visit(full, entryRel, true)

			visited[id] = struct{}{}
			err = r.walk(ctx, full, entryRel, visited, visit)
			delete(visited, id)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				r.debug("skipping unreadable directory", "path", full, "error", err)
			}

		case mode.IsRegular():
			if isTempFile(entry.Name()) {
				continue
			}
			visit(full, entryRel, false)
		}
	}

	return nil
}

// canonical returns the absolute, symlink-free path identifying a directory.
func canonical(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// projectName derives a project name from a root-relative slash path by
// stripping the project extension. Files with other extensions keep them.
func projectName(rel string) string {
	if strings.HasSuffix(rel, core.ProjectExtension) && len(path.Base(rel)) > len(core.ProjectExtension) {
		return strings.TrimSuffix(rel, core.ProjectExtension)
	}
	return rel
}
