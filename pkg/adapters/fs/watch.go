package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/burrow/pkg/core"
)

type watcher struct {
	repo    *Repository
	pattern string
	events  chan core.Event
	fsw     *fsnotify.Watcher
	dirs    map[string]struct{}
}

// Watch streams project events under the root. Directories are watched
// through the same symlink-safe walk used by List, and directories created
// later are picked up as they appear. pattern filters project names
// (doublestar syntax); "" matches everything.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %q", pattern)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &watcher{
		repo:    r,
		pattern: pattern,
		events:  make(chan core.Event),
		fsw:     fsw,
		dirs:    make(map[string]struct{}),
	}

	if err := w.add(ctx, r.Root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.handleWatchError(fmt.Errorf("watcher panic: %w", err))
	}))

	return w.events, nil
}

// add watches dir and every directory below it.
func (w *watcher) add(ctx context.Context, dir string) error {
	if err := w.watchDir(dir); err != nil {
		return err
	}

	sub := NewRepository(Config{Root: dir, Logger: w.repo.config.Logger})
	return sub.walkRoot(ctx, func(full, rel string, isDir bool) {
		if !isDir {
			return
		}
		if err := w.watchDir(full); err != nil {
			w.repo.handleWatchError(err)
		}
	})
}

func (w *watcher) watchDir(dir string) error {
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dirs[filepath.Clean(dir)] = struct{}{}
	return nil
}

func (w *watcher) run(ctx context.Context) error {
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			w.handle(ctx, event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			w.repo.handleWatchError(err)
		}
	}
}

func (w *watcher) handle(ctx context.Context, event fsnotify.Event) {
	if isTempFile(event.Name) {
		return
	}

	name := filepath.Clean(event.Name)
	if _, isDir := w.dirs[name]; isDir {
		if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
			delete(w.dirs, name)
		}
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if err := w.add(ctx, name); err != nil {
				w.repo.handleWatchError(err)
			}
			return
		}
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}
	if eType != core.EventDelete {
		if info, err := os.Lstat(name); err == nil && info.Mode()&os.ModeSymlink != 0 {
			return
		}
	}

	project, ok := w.repo.projectNameFor(name)
	if !ok {
		return
	}
	if w.pattern != "" {
		if match, _ := doublestar.Match(w.pattern, project); !match {
			return
		}
	}

	w.repo.recordEvent()
	select {
	case w.events <- core.Event{Type: eType, Name: project, Timestamp: time.Now().Unix()}:
	case <-ctx.Done():
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// projectNameFor maps a file path under the root to its project name.
func (r *Repository) projectNameFor(path string) (string, bool) {
	if !r.isInsideRoot(path) {
		return "", false
	}
	rel, err := filepath.Rel(r.Root, path)
	if err != nil {
		return "", false
	}
	return projectName(filepath.ToSlash(rel)), true
}

func (r *Repository) handleWatchError(err error) {
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
		return
	}
	if r.config.Logger != nil {
		r.config.Logger.Error("watcher error", "error", err)
	}
}

