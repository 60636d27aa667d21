package channel

import "errors"

var (
	// ErrChannelUnbound indicates a message was sent on a channel that no handler is bound to.
	// This is the in-process analogue of calling into a plugin that was never registered.
	ErrChannelUnbound = errors.New("no handler bound to channel")
	// ErrMalformedEnvelope indicates a payload could not be decoded as a method-call or result
	// envelope.
	ErrMalformedEnvelope = errors.New("malformed channel envelope")
	// ErrSinkClosed indicates an event was published to an event channel after Close.
	ErrSinkClosed = errors.New("event channel closed")
)
