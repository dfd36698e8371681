package core

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrProjectNameEmpty         = errors.New("project name cannot be empty")
	ErrProjectNameTrailingSlash = errors.New("project name cannot have a trailing slash")
	ErrProjectNameAbsolutePath  = errors.New("project name cannot be an absolute path")
	ErrEditorEmpty              = errors.New("editor command cannot be empty")

	ErrTmuxIdentifierEmpty             = errors.New("name cannot be empty")
	ErrTmuxIdentifierIllegalCharacters = errors.New("name cannot contain the following characters: .:")
)

// Conflict errors.
var (
	ErrProjectFileIsADirectory = errors.New("project file is a directory")
	ErrProjectDoesNotExist     = errors.New("project does not exist")
)

// ErrWatchUnsupported is returned when the repository cannot be observed.
var ErrWatchUnsupported = errors.New("repository does not support watching")

// ProjectError records the operation, project name and path that caused an error.
// Err is one of the sentinels above or an underlying I/O error.
type ProjectError struct {
	Op   string
	Name string
	Path string
	Err  error
}

func (e *ProjectError) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
	}
}

func (e *ProjectError) Unwrap() error { return e.Err }
