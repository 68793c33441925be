// Package notify carries coarse content-change notifications between the
// admin mutations and the live collection views. The local backend uses the
// in-process broker directly; the hosted backend fans the same messages out
// through RabbitMQ so other server instances and admin sessions refetch too.
package notify

import (
	"sync"

	"aadhrita/internal/store"
)

// Broker is an in-process store.Notifier.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[store.Kind]map[int]func()
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[store.Kind]map[int]func())}
}

func (b *Broker) Publish(kind store.Kind) {
	b.mu.Lock()
	handlers := make([]func(), 0, len(b.subs[kind]))
	for _, fn := range b.subs[kind] {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may unsubscribe or
	// publish from within its handler.
	for _, fn := range handlers {
		fn()
	}
}

func (b *Broker) Subscribe(kind store.Kind, onChange func()) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.subs[kind][id] = onChange

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[kind], id)
	}, nil
}
