// Package notifier broadcasts content-changed pings to live SSE streams.
package notifier

import (
	"log/slog"
	"sync"
)

// Notifier fans a ping out to every subscribed stream. Listeners receive an
// empty struct and re-read the dashboard data themselves.
type Notifier struct {
	logger *slog.Logger

	mu        sync.RWMutex
	listeners map[chan struct{}]struct{}
}

// New creates a Notifier. A nil logger discards output.
func New(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Notifier{
		logger:    logger,
		listeners: make(map[chan struct{}]struct{}),
	}
}

// Subscribe returns a channel that receives pings.
// The caller must call Unsubscribe when the stream ends.
func (n *Notifier) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes ch. Unknown channels are ignored.
func (n *Notifier) Unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	_, ok := n.listeners[ch]
	delete(n.listeners, ch)
	n.mu.Unlock()
	if ok {
		close(ch)
	}
}

// Len returns the number of live listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}

// Broadcast pings every listener and returns how many were reached.
// A listener with a pending ping is skipped; it will re-read anyway.
func (n *Notifier) Broadcast(reason string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	sent := 0
	for ch := range n.listeners {
		select {
		case ch <- struct{}{}:
			sent++
		default:
		}
	}

	n.logger.Debug("broadcast", slog.String("reason", reason), slog.Int("sent", sent), slog.Int("listeners", len(n.listeners)))
	return sent
}
