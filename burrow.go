package burrow

import (
	"log/slog"

	"github.com/aretw0/burrow/internal/platform"
	"github.com/aretw0/burrow/pkg/core"
)

// --- Types ---

// Project is a public alias for a discovered project.
type Project = core.Project

// EditOptions is a public alias for the edit flags.
type EditOptions = core.EditOptions

// Service is a public alias for the project service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring burrow.
type Option = platform.Option

// WithMustExist requires the projects directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom project store.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithEditor replaces the editor launcher.
func WithEditor(editor core.Editor) Option {
	return platform.WithEditor(editor)
}

// WithConfirmer replaces the removal prompt.
func WithConfirmer(confirmer core.Confirmer) Option {
	return platform.WithConfirmer(confirmer)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a project service rooted at root.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// Init initializes a project store explicitly.
func Init(root string, opts ...Option) (core.Repository, error) {
	return platform.Init(root, opts...)
}
