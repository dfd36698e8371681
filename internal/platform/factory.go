package platform

import (
	"github.com/aretw0/burrow/pkg/core"
	"github.com/aretw0/burrow/pkg/editor"
	"github.com/aretw0/burrow/pkg/prompt"
)

// New opens the project store at root and wires the service around it.
//
//	svc, err := burrow.New("~/.config/burrow/projects", burrow.WithLogger(logger))
func New(root string, opts ...Option) (*core.Service, error) {
	// 1. Initialize the store (directories, adapter)
	repo, err := Init(root, opts...)
	if err != nil {
		return nil, err
	}

	// We also need to parse options here to get the collaborators for wiring
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.editor == nil {
		o.editor = editor.New(o.logger)
	}
	if o.confirmer == nil {
		o.confirmer = prompt.New()
	}

	return core.NewService(repo, o.editor, o.confirmer, o.logger), nil
}
