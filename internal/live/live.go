// Package live keeps always-fresh snapshots of content collections. A view
// fetches once on start and refetches the whole collection on every change
// notification (coarse invalidation, no incremental patching). A failed
// refetch keeps the last-known snapshot rather than clearing it.
package live

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"aadhrita/internal/store"
)

// Subscriber is the subscription half of store.Notifier; both the notify
// broker and the content stores satisfy it.
type Subscriber interface {
	Subscribe(kind store.Kind, onChange func()) (func(), error)
}

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError
)

// View holds one snapshot of type T (a collection slice or a singleton
// pointer). Refetches may overlap; a sequence guard makes completion order
// irrelevant: only the newest started fetch may apply its result.
type View[T any] struct {
	kind  store.Kind
	fetch func(context.Context) (T, error)
	log   *zerolog.Logger

	seq atomic.Uint64

	mu      sync.Mutex
	applied uint64
	data    T
	state   State
	closed  bool
	unsub   func()
}

func NewView[T any](kind store.Kind, fetch func(context.Context) (T, error), log *zerolog.Logger) *View[T] {
	return &View[T]{kind: kind, fetch: fetch, log: log}
}

// Start subscribes to change notifications and performs the initial fetch.
func (v *View[T]) Start(ctx context.Context, sub Subscriber) error {
	unsub, err := sub.Subscribe(v.kind, func() {
		go v.refetch(ctx)
	})
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.unsub = unsub
	v.state = StateLoading
	v.mu.Unlock()

	v.refetch(ctx)
	return nil
}

// Stop unsubscribes the view. In-flight fetches are not canceled, their
// results are discarded.
func (v *View[T]) Stop() {
	v.mu.Lock()
	unsub := v.unsub
	v.unsub = nil
	v.closed = true
	v.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (v *View[T]) refetch(ctx context.Context) {
	seq := v.seq.Add(1)
	data, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	if seq <= v.applied {
		// A fetch that started later already applied its result.
		return
	}
	if err != nil {
		v.log.Error().Err(err).Msgf("failed to refresh %s", v.kind)
		if v.state != StateReady {
			v.state = StateError
		}
		return
	}
	v.applied = seq
	v.data = data
	v.state = StateReady
}

// Get returns the current snapshot, falling through to a direct fetch while
// the view has not become ready yet.
func (v *View[T]) Get(ctx context.Context) (T, error) {
	v.mu.Lock()
	if v.state == StateReady {
		data := v.data
		v.mu.Unlock()
		return data, nil
	}
	v.mu.Unlock()
	return v.fetch(ctx)
}

// Snapshot returns the held data and state without fetching.
func (v *View[T]) Snapshot() (T, State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data, v.state
}
