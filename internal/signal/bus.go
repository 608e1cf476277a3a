package signal

import (
	"sync"

	"github.com/google/uuid"
)

// Trigger is an external event that invalidates a row's cached contents.
type Trigger int

const (
	TriggerLibraryUpdated Trigger = iota
	TriggerMoviePlayback
	TriggerTvPlayback
	TriggerMusicPlayback
	TriggerFavoriteUpdate
	TriggerGuideUpdated
)

// Handler is a callback invoked when a trigger fires.
type Handler func(Trigger)

// UnsubscribeFunc is returned from Subscribe and can be called to unsubscribe.
type UnsubscribeFunc func()

// handlerEntry wraps a handler with a unique ID for safe unsubscription.
type handlerEntry struct {
	id      uint64
	handler Handler
}

// Bus is a small pub/sub hub for change triggers. Publish invokes
// handlers synchronously on the calling goroutine: the browse surface
// publishes from its own update loop, so row state is only ever touched
// by its owner.
type Bus struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers map[Trigger][]handlerEntry
}

// NewBus creates an empty trigger bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[Trigger][]handlerEntry)}
}

// Subscribe registers a handler for one trigger.
func (b *Bus) Subscribe(t Trigger, h Handler) UnsubscribeFunc {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subscribers[t] = append(b.subscribers[t], handlerEntry{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		handlers := b.subscribers[t]
		for i, e := range handlers {
			if e.id == id {
				handlers[i] = handlers[len(handlers)-1]
				b.subscribers[t] = handlers[:len(handlers)-1]
				return
			}
		}
	}
}

// Publish fires a trigger, invoking every subscribed handler before
// returning.
func (b *Bus) Publish(t Trigger) {
	b.mu.Lock()
	entries := make([]handlerEntry, len(b.subscribers[t]))
	copy(entries, b.subscribers[t])
	b.mu.Unlock()

	for _, e := range entries {
		e.handler(t)
	}
}

// SubscriberCount returns the number of subscribers for a trigger.
func (b *Bus) SubscriberCount(t Trigger) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers[t])
}

// Deletions records the most recently deleted item id so that browse
// surfaces can reconcile it out of their rows on resume.
type Deletions struct {
	mu   sync.Mutex
	last uuid.UUID
	set  bool
}

// NewDeletions creates an empty deletion record.
func NewDeletions() *Deletions {
	return &Deletions{}
}

// Set records the id of a just-deleted item.
func (d *Deletions) Set(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = id
	d.set = true
}

// Last returns the recorded id, if any.
func (d *Deletions) Last() (uuid.UUID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last, d.set
}

// Clear forgets the recorded id. Called once a surface has reconciled it.
func (d *Deletions) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = uuid.UUID{}
	d.set = false
}
