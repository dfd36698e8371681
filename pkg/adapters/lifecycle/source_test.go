package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/burrow/pkg/adapters/lifecycle"
	"github.com/aretw0/burrow/pkg/core"
)

// stubWatcher replays a fixed set of events.
type stubWatcher struct {
	events  chan core.Event
	err     error
	pattern string
}

func (w *stubWatcher) Watch(_ context.Context, pattern string) (<-chan core.Event, error) {
	w.pattern = pattern
	if w.err != nil {
		return nil, w.err
	}
	return w.events, nil
}

func TestSource(t *testing.T) {
	t.Run("Forwards Events Until Input Closes", func(t *testing.T) {
		w := &stubWatcher{events: make(chan core.Event, 2)}
		w.events <- core.Event{Type: core.EventCreate, Name: "work/api"}
		w.events <- core.Event{Type: core.EventDelete, Name: "work/api"}
		close(w.events)

		src := lifecycle.NewSource(w, "work/*")
		require.NoError(t, src.Start(context.Background()))
		assert.Equal(t, "work/*", w.pattern)

		var got []core.Event
		for e := range src.Events() {
			got = append(got, e.(core.Event))
		}
		require.Len(t, got, 2)
		assert.Equal(t, core.EventCreate, got[0].Type)
		assert.Equal(t, core.EventDelete, got[1].Type)
	})

	t.Run("Filters By Type", func(t *testing.T) {
		w := &stubWatcher{events: make(chan core.Event, 3)}
		w.events <- core.Event{Type: core.EventCreate, Name: "a"}
		w.events <- core.Event{Type: core.EventModify, Name: "a"}
		w.events <- core.Event{Type: core.EventDelete, Name: "a"}
		close(w.events)

		src := lifecycle.NewSource(w, "", lifecycle.WithTypes(core.EventDelete))
		require.NoError(t, src.Start(context.Background()))

		var got []core.EventType
		for e := range src.Events() {
			got = append(got, e.(core.Event).Type)
		}
		assert.Equal(t, []core.EventType{core.EventDelete}, got)
	})

	t.Run("Watch Failure Is Returned By Start", func(t *testing.T) {
		boom := errors.New("boom")
		src := lifecycle.NewSource(&stubWatcher{err: boom}, "")

		assert.ErrorIs(t, src.Start(context.Background()), boom)
	})

	t.Run("Drops Pending Event On Cancel", func(t *testing.T) {
		w := &stubWatcher{events: make(chan core.Event, 1)}
		ctx, cancel := context.WithCancel(context.Background())
		src := lifecycle.NewSource(w, "")
		require.NoError(t, src.Start(ctx))

		// nobody reads Events while this one is in flight
		w.events <- core.Event{Type: core.EventCreate, Name: "late"}
		time.Sleep(20 * time.Millisecond)
		cancel()

		deadline := time.After(time.Second)
		for {
			select {
			case _, ok := <-src.Events():
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("source did not close after cancel")
			}
		}
	})
}
