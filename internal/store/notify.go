package store

import "sync"

// EventKind classifies a catalog change.
type EventKind int

const (
	// EventSaved follows a successful Put (create or update).
	EventSaved EventKind = iota
	// EventDeleted follows a successful Delete of an existing profile.
	EventDeleted
	// EventExternal reports a change made outside this process, surfaced
	// by the directory watcher. ProfileID may be empty.
	EventExternal
)

// Event is one catalog change notification.
type Event struct {
	Kind      EventKind
	ProfileID string
}

// Notifier is a small publish/subscribe hub for catalog changes. Delivery
// is fire-and-forget: a subscriber that is not draining its channel drops
// events rather than blocking the writer, so subscribers must treat any
// event as "reload", not as an exact change log.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func unregisters it
// and closes the channel; calling cancel more than once is safe.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	ch := make(chan Event, 8)
	n.subs[id] = ch
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			close(ch)
			n.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish sends the event to every current subscriber without blocking.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
