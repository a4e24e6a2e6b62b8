// Package sse streams game-log entries to connected SysAdmin consoles.
package sse

import (
	"sync"

	"github.com/skeld/the-alignment-problem/internal/models"
)

// clientBufferSize is the per-client channel buffer
const clientBufferSize = 10

// Broadcaster fans appended log entries out to subscribed clients
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[chan models.LogEntry]struct{}
}

// NewBroadcaster creates an empty Broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[chan models.LogEntry]struct{}),
	}
}

// Subscribe registers a new client and returns its channel
func (b *Broadcaster) Subscribe() chan models.LogEntry {
	client := make(chan models.LogEntry, clientBufferSize)
	b.mu.Lock()
	b.clients[client] = struct{}{}
	b.mu.Unlock()
	return client
}

// Unsubscribe removes a client. The channel is never closed: a Publish
// racing with the removal may still hold a reference to it, and the
// subscriber's goroutine exits on its own context instead.
func (b *Broadcaster) Unsubscribe(client chan models.LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.clients, client)
}

// ClientCount reports how many clients are connected
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Publish sends an entry to every client. Sends never block: a client with
// a full buffer loses the entry rather than stalling the publisher, which
// runs inside the game-state lock.
func (b *Broadcaster) Publish(entry models.LogEntry) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for client := range b.clients {
		select {
		case client <- entry:
		default:
			// slow consumer, drop the entry for them
		}
	}
}
