// Package events fans ledger trace messages out to registered subscribers,
// such as websocket clients watching the node mine.
package events

import (
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned when subscribing after the events value was shut down.
var ErrClosed = errors.New("events shut down")

// messageBuffer is the number of messages a slow subscriber can fall behind
// before messages addressed to it start being dropped.
const messageBuffer = 100

// Events maintains a mapping of subscriber id and channels so goroutines
// can register and receive events.
type Events struct {
	mu      sync.RWMutex
	subs    map[string]chan string
	dropped map[string]int
	closed  bool
}

// New constructs an events for registering and receiving events.
func New() *Events {
	return &Events{
		subs:    make(map[string]chan string),
		dropped: make(map[string]int),
	}
}

// Acquire takes a unique id and returns a channel that can be used
// to receive events. Acquiring an id twice returns the same channel.
func (evt *Events) Acquire(id string) (<-chan string, error) {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	if evt.closed {
		return nil, ErrClosed
	}

	if ch, exists := evt.subs[id]; exists {
		return ch, nil
	}

	ch := make(chan string, messageBuffer)
	evt.subs[id] = ch

	return ch, nil
}

// Release closes and removes the channel that was provided by
// the call to Acquire.
func (evt *Events) Release(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if !exists {
		return fmt.Errorf("id %q does not exist", id)
	}

	delete(evt.subs, id)
	delete(evt.dropped, id)
	close(ch)

	return nil
}

// Send signals a message to every registered channel. Send will not block
// waiting for a receiver on any given channel; the message is dropped for
// a subscriber whose buffer is full.
func (evt *Events) Send(s string) {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		select {
		case ch <- s:
		default:
			evt.dropped[id]++
		}
	}
}

// Dropped returns the number of messages dropped for the specified subscriber.
func (evt *Events) Dropped(id string) int {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	return evt.dropped[id]
}

// Subscribers returns the number of registered subscribers.
func (evt *Events) Subscribers() int {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	return len(evt.subs)
}

// Shutdown closes and removes all channels that were provided by
// the call to Acquire. Later calls to Acquire fail with ErrClosed.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		delete(evt.subs, id)
		close(ch)
	}
	clear(evt.dropped)
	evt.closed = true
}
