// Package lifecycle exposes project events as a lifecycle.Source so they can
// be consumed alongside other lifecycle-managed event streams.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/burrow/pkg/core"
)

// Option tunes a project source.
type Option func(*projectSource)

// WithTypes keeps only events of the given types. No types means all.
func WithTypes(types ...core.EventType) Option {
	return func(s *projectSource) {
		for _, t := range types {
			s.types[t] = struct{}{}
		}
	}
}

type projectSource struct {
	watcher core.Watchable
	pattern string
	types   map[core.EventType]struct{}
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source over the projects watched by w.
// Watching starts with Start; pattern is passed through to w.Watch.
func NewSource(w core.Watchable, pattern string, opts ...Option) lifecycle.Source {
	s := &projectSource{
		watcher: w,
		pattern: pattern,
		types:   make(map[core.EventType]struct{}),
		out:     make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *projectSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start begins watching and returns once the watcher is in place. Events is
// closed when the watch ends or ctx is done; events pending at that point are
// dropped rather than blocking on a reader that has gone away.
func (s *projectSource) Start(ctx context.Context) error {
	events, err := s.watcher.Watch(ctx, s.pattern)
	if err != nil {
		return fmt.Errorf("failed to start watching projects: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				if !s.wants(e.Type) {
					continue
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (s *projectSource) wants(t core.EventType) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[t]
	return ok
}
