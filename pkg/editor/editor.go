// Package editor launches an external editor on a project file and waits for
// it to exit.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/aretw0/burrow/pkg/core"
	"github.com/aretw0/burrow/pkg/shell"
)

// Launcher runs an editor command with the caller's terminal attached.
// Nil streams default to the process's standard streams.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// New returns a Launcher bound to the standard streams.
func New(logger *slog.Logger) *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Launch splits command into words, appends path and runs the result,
// blocking until the editor exits. A non-zero exit status is an error.
func (l *Launcher) Launch(ctx context.Context, command, path string) error {
	if strings.TrimSpace(command) == "" {
		return core.ErrEditorEmpty
	}

	prog, args, err := shell.ParseCommand(command, path)
	if err != nil {
		if errors.Is(err, shell.ErrCommandEmpty) {
			return core.ErrEditorEmpty
		}
		return err
	}

	if l.Logger != nil {
		l.Logger.Debug("launching editor", "command", shell.Join(append([]string{prog}, args...)...))
	}

	cmd := exec.CommandContext(ctx, prog, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if l.Stdin != nil {
		cmd.Stdin = l.Stdin
	}
	if l.Stdout != nil {
		cmd.Stdout = l.Stdout
	}
	if l.Stderr != nil {
		cmd.Stderr = l.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", prog, err)
	}
	return nil
}

var _ core.Editor = (*Launcher)(nil)
