package service

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier broadcasts "dashboard-visible state changed for user X" events.
// Entity services publish after any write that affects the dashboard;
// interested callers (cache invalidation, push channels) subscribe instead
// of relying on an ambient refresh hook.
type Notifier struct {
	mu          sync.RWMutex
	subscribers []func(userID primitive.ObjectID)
}

// NewNotifier creates an empty notifier. A nil *Notifier is safe to publish
// to, so services can treat it as optional.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a callback invoked on every published change. The
// callback runs synchronously on the publishing goroutine and must be fast.
func (n *Notifier) Subscribe(fn func(userID primitive.ObjectID)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Publish notifies all subscribers that the user's records changed.
func (n *Notifier) Publish(userID primitive.ObjectID) {
	if n == nil {
		return
	}
	n.mu.RLock()
	subs := make([]func(primitive.ObjectID), len(n.subscribers))
	copy(subs, n.subscribers)
	n.mu.RUnlock()

	for _, fn := range subs {
		fn(userID)
	}
}
