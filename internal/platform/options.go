package platform

import (
	"log/slog"

	"github.com/aretw0/burrow/pkg/core"
)

// options holds the internal configuration for the burrow service.
type options struct {
	repository core.Repository
	editor     core.Editor
	confirmer  core.Confirmer
	logger     *slog.Logger
	config     map[string]any
}

// Option defines a functional option for configuring burrow.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: make(map[string]any),
	}
}

// WithMustExist requires the projects directory to exist already instead of
// creating it.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom project store (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithEditor replaces the editor launcher. Defaults to one attached to the
// process's standard streams.
func WithEditor(editor core.Editor) Option {
	return func(o *options) {
		o.editor = editor
	}
}

// WithConfirmer replaces the yes/no prompt used before removal.
func WithConfirmer(confirmer core.Confirmer) Option {
	return func(o *options) {
		o.confirmer = confirmer
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the
// watch loop (e.g. a directory that became unreadable). Without it they are
// only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
