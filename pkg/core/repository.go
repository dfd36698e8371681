package core

import "context"

// Repository defines the contract for storing project files.
// Implementations receive names that have already been validated.
type Repository interface {
	// Path resolves the file backing name. It does not touch the storage.
	Path(name string) string

	// Exists reports whether a project file (not a directory) is stored under name.
	Exists(ctx context.Context, name string) (bool, error)

	// Ensure makes sure a project file exists for name, creating parent
	// namespaces and an initial skeleton when missing. It reports whether
	// the file was created by this call.
	Ensure(ctx context.Context, name string) (created bool, err error)

	// Delete removes the project file and any namespace directories left
	// empty by the removal, never touching the root itself.
	Delete(ctx context.Context, name string) error

	// List returns every project stored under the root, in no particular order.
	List(ctx context.Context) ([]Project, error)

	// Initialize ensures the underlying storage is ready (e.g. create the root).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by repositories that can report changes.
type Watchable interface {
	// Watch streams events for projects whose name matches pattern ("" matches all).
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Editor opens a project file in an interactive program and blocks until it exits.
type Editor interface {
	Launch(ctx context.Context, command, path string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string, def bool) (bool, error)
}
