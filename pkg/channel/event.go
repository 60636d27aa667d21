package channel

import (
	"sync"

	"github.com/p2pconn/p2p-connection/internal/log"
)

// EventBufferSize is the number of undelivered events queued per subscriber before the channel
// starts dropping events for that subscriber.
const EventBufferSize = 64

// EventChannel is a named one-to-many event stream. The plugin publishes; the host
// application subscribes for raw JSON events.
//
// Publishing never blocks: a subscriber that falls more than EventBufferSize events behind has
// events dropped rather than stalling the plugin.
type EventChannel struct {
	name string

	mu          sync.Mutex
	subscribers map[chan []byte]struct{}
	closed      bool
}

func NewEventChannel(name string) *EventChannel {
	return &EventChannel{
		name:        name,
		subscribers: make(map[chan []byte]struct{}),
	}
}

func (c *EventChannel) Name() string {
	return c.name
}

// Subscribe registers a new listener. The caller must call Unsubscribe when done. Subscribing
// to a closed channel returns an already-closed Go channel.
func (c *EventChannel) Subscribe() chan []byte {
	ch := make(chan []byte, EventBufferSize)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch
	}
	c.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a listener and closes its channel. Unsubscribing a channel that was
// already removed is a no-op.
func (c *EventChannel) Unsubscribe(ch chan []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subscribers[ch]; !ok {
		return
	}
	delete(c.subscribers, ch)
	close(ch)
}

// Publish encodes event as JSON and fans it out to every subscriber.
func (c *EventChannel) Publish(event interface{}) error {
	raw, err := encodeValue(event)
	if err != nil {
		return err
	}
	payload := []byte(raw)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrSinkClosed
	}
	for ch := range c.subscribers {
		select {
		case ch <- payload:
		default:
			log.Debug("Dropping event on channel %s for slow subscriber", c.name)
		}
	}
	return nil
}

// Close ends the stream. Subscriber channels are closed; further publishes fail with
// ErrSinkClosed. Close is idempotent.
func (c *EventChannel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for ch := range c.subscribers {
		delete(c.subscribers, ch)
		close(ch)
	}
}

// SubscriberCount returns the current number of listeners.
func (c *EventChannel) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers)
}
