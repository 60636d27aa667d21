package channel

import (
	"context"

	"github.com/p2pconn/p2p-connection/internal/log"
)

// MethodHandler produces the result for one incoming method call. It runs synchronously on the
// goroutine that delivered the call.
type MethodHandler func(ctx context.Context, call MethodCall) Result

// MethodChannel is a named request/response path between the host application and a plugin.
type MethodChannel struct {
	name      string
	messenger Messenger
}

func NewMethodChannel(messenger Messenger, name string) *MethodChannel {
	return &MethodChannel{name: name, messenger: messenger}
}

func (c *MethodChannel) Name() string {
	return c.name
}

// Invoke sends a method call from the host side and decodes the plugin's reply. A transport or
// codec failure is returned as an error; a structured error from the plugin arrives as a Result
// with StatusError.
func (c *MethodChannel) Invoke(ctx context.Context, method string, arguments interface{}) (Result, error) {
	payload, err := EncodeMethodCall(MethodCall{Method: method, Arguments: arguments})
	if err != nil {
		return Result{}, err
	}
	log.Debug("Invoking %s on channel %s", method, c.name)
	reply, err := c.messenger.Send(ctx, c.name, payload)
	if err != nil {
		return Result{}, err
	}
	return DecodeResult(reply)
}

// SetHandler binds the plugin side of the channel. Incoming payloads are decoded, handed to
// handler, and the result encoded back to the caller. A nil handler unbinds the channel.
func (c *MethodChannel) SetHandler(handler MethodHandler) {
	if handler == nil {
		c.messenger.SetHandler(c.name, nil)
		return
	}
	c.messenger.SetHandler(c.name, func(ctx context.Context, payload []byte) ([]byte, error) {
		call, err := DecodeMethodCall(payload)
		if err != nil {
			log.Warning("Rejecting malformed call on channel %s: %s", c.name, err)
			return nil, err
		}
		return EncodeResult(handler(ctx, call))
	})
}
