package platform

import (
	"context"

	"github.com/aretw0/burrow/pkg/adapters/fs"
	"github.com/aretw0/burrow/pkg/core"
)

// Init prepares the project store rooted at root and returns it.
// The directory is created unless WithMustExist(true) is given.
func Init(root string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Build the filesystem store
	repo, err := initFS(root, o)
	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(root string, o *options) (*fs.Repository, error) {
	resolved, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	mustExist, _ := o.config["must_exist"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	if o.logger != nil {
		o.logger.Debug("opening project store", "root", resolved, "must_exist", mustExist)
	}

	return fs.NewRepository(fs.Config{
		Root:         resolved,
		MustExist:    mustExist,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	}), nil
}
