package test

import (
	"sync"

	"github.com/craftlink/marketplace/internal/notify"
)

// NotifierStub records enqueued notification events.
type NotifierStub struct {
	mu     sync.Mutex
	Events []notify.Event
}

// Enqueue appends event to the recorded list.
func (n *NotifierStub) Enqueue(event notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, event)
}

// Recorded returns a snapshot of the events enqueued so far.
func (n *NotifierStub) Recorded() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Event, len(n.Events))
	copy(out, n.Events)
	return out
}
