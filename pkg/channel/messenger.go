package channel

import (
	"context"
	"fmt"
	"sync"
)

// Handler processes one binary message delivered on a named channel and returns the binary
// reply.
type Handler func(ctx context.Context, payload []byte) ([]byte, error)

// Messenger routes binary messages between the host application and its plugins.
//
// Implementations must be thread safe. Delivery is synchronous: Send does not return until the
// bound handler has run.
type Messenger interface {
	// Send delivers payload to the handler bound to the named channel and returns its reply.
	// Sending on a channel with no handler returns ErrChannelUnbound.
	Send(ctx context.Context, channel string, payload []byte) ([]byte, error)

	// SetHandler binds handler to the named channel, replacing any previous binding. A nil
	// handler removes the binding.
	SetHandler(channel string, handler Handler)
}

// HostMessenger is an in-process Messenger. It backs tests and tools that embed a plugin
// directly instead of bridging to an external host runtime.
type HostMessenger struct {
	handlerLock sync.RWMutex
	handlers    map[string]Handler
}

func NewHostMessenger() *HostMessenger {
	return &HostMessenger{handlers: make(map[string]Handler)}
}

func (m *HostMessenger) SetHandler(channel string, handler Handler) {
	m.handlerLock.Lock()
	defer m.handlerLock.Unlock()
	if handler == nil {
		delete(m.handlers, channel)
		return
	}
	m.handlers[channel] = handler
}

func (m *HostMessenger) Send(ctx context.Context, channel string, payload []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.handlerLock.RLock()
	handler := m.handlers[channel]
	m.handlerLock.RUnlock()
	if handler == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelUnbound, channel)
	}
	return handler(ctx, payload)
}
