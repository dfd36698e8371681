package core

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// EditOptions tunes Service.EditProject.
type EditOptions struct {
	// CreateOnly skips the editor when the project file already existed.
	CreateOnly bool
}

// Service handles the business logic for projects.
type Service struct {
	repo      Repository
	editor    Editor
	confirmer Confirmer
	logger    *slog.Logger
}

// NewService creates a new Service. editor, confirmer and logger may be nil;
// operations that need a missing collaborator fail instead of panicking.
func NewService(repo Repository, editor Editor, confirmer Confirmer, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		editor:    editor,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Repository exposes the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// EditProject creates the project if needed and opens it with editorCommand.
//
// Workflow:
//  1. Validate the name and the editor command (no filesystem access yet).
//  2. Ensure the file exists, creating namespaces and a skeleton if missing.
//  3. Launch the editor unless CreateOnly is set and the file already existed.
func (s *Service) EditProject(ctx context.Context, name, editorCommand string, opts EditOptions) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if strings.TrimSpace(editorCommand) == "" {
		return ErrEditorEmpty
	}

	path := s.repo.Path(name)

	created, err := s.repo.Ensure(ctx, name)
	if err != nil {
		return err
	}
	if created {
		s.debug("project created", "name", name, "path", path)
	}

	if opts.CreateOnly && !created {
		s.debug("project already exists, skipping editor", "name", name)
		return nil
	}

	if s.editor == nil {
		return fmt.Errorf("no editor configured")
	}
	return s.editor.Launch(ctx, editorCommand, path)
}

// RemoveProject deletes a project, asking for confirmation unless confirmed is set.
// It reports whether the file was removed; declining the confirmation
// returns false and no error.
func (s *Service) RemoveProject(ctx context.Context, name string, confirmed bool) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}

	path := s.repo.Path(name)

	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, &ProjectError{Op: "remove", Name: name, Err: ErrProjectDoesNotExist}
	}

	if !confirmed {
		if s.confirmer == nil {
			return false, fmt.Errorf("confirmation required to remove %q", name)
		}
		ok, err := s.confirmer.Confirm(fmt.Sprintf("Are you sure you want to remove %s?", path), false)
		if err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			s.debug("removal declined", "name", name)
			return false, nil
		}
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

// ListProjects returns all projects sorted by name. A non-empty pattern
// (doublestar syntax, e.g. "work/**") filters on the project name.
func (s *Service) ListProjects(ctx context.Context, pattern string) ([]Project, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %q", pattern)
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if pattern != "" {
		filtered := projects[:0]
		for _, p := range projects {
			if ok, _ := doublestar.Match(pattern, p.Name); ok {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

// Watch observes project changes if the repository supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, pattern)
}

func (s *Service) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

var _ Watchable = (*Service)(nil)
