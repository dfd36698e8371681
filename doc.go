// Package burrow is the composition root for the burrow project store.
//
// A project is a tmux session description kept as a YAML file under a single
// projects directory. Names are slash-separated: "work/api" lives at
// <root>/work/api.yml. burrow creates projects (opening them in an editor),
// removes them (pruning namespaces left empty), and lists or watches
// everything under the root, following symlinks without looping.
//
// The core logic (pkg/core) is isolated from the filesystem adapter
// (pkg/adapters/fs) and from the terminal collaborators (pkg/editor,
// pkg/prompt), which are wired here through functional options.
//
// Usage:
//
//	svc, err := burrow.New("~/.config/burrow/projects",
//		burrow.WithLogger(logger),
//	)
//
//	// Create the project if needed and open it in $EDITOR
//	err = svc.EditProject(ctx, "work/api", os.Getenv("EDITOR"), burrow.EditOptions{})
package burrow
