package channel

import (
	"context"
	"errors"
	"testing"
)

func TestInvokeReachesHandler(t *testing.T) {
	messenger := NewHostMessenger()
	ch := NewMethodChannel(messenger, "test_channel")
	ch.SetHandler(func(_ context.Context, call MethodCall) Result {
		if call.Method != "echo" {
			return NotImplemented()
		}
		return Success(call.Arguments)
	})

	result, err := ch.Invoke(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Error invoking method: %s", err)
	}
	if result.Status != StatusSuccess || result.Value != "hello" {
		t.Errorf("Unexpected result %+v", result)
	}

	result, err = ch.Invoke(context.Background(), "other", nil)
	if err != nil {
		t.Fatalf("Error invoking method: %s", err)
	}
	if result.Status != StatusNotImplemented {
		t.Errorf("Expected NotImplemented but got %+v", result)
	}
}

func TestInvokeUnboundChannel(t *testing.T) {
	ch := NewMethodChannel(NewHostMessenger(), "test_channel")
	if _, err := ch.Invoke(context.Background(), "echo", nil); !errors.Is(err, ErrChannelUnbound) {
		t.Errorf("Expected ErrChannelUnbound but got %v", err)
	}
}

func TestInvokeAfterHandlerCleared(t *testing.T) {
	messenger := NewHostMessenger()
	ch := NewMethodChannel(messenger, "test_channel")
	ch.SetHandler(func(_ context.Context, _ MethodCall) Result { return Success(nil) })
	ch.SetHandler(nil)
	if _, err := ch.Invoke(context.Background(), "echo", nil); !errors.Is(err, ErrChannelUnbound) {
		t.Errorf("Expected ErrChannelUnbound but got %v", err)
	}
}

func TestInvokeCanceledContext(t *testing.T) {
	messenger := NewHostMessenger()
	ch := NewMethodChannel(messenger, "test_channel")
	handlerRan := false
	ch.SetHandler(func(_ context.Context, _ MethodCall) Result {
		handlerRan = true
		return Success(nil)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ch.Invoke(ctx, "echo", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled but got %v", err)
	}
	if handlerRan {
		t.Error("Handler ran despite canceled context")
	}
}

func TestInvokeErrorResult(t *testing.T) {
	messenger := NewHostMessenger()
	ch := NewMethodChannel(messenger, "test_channel")
	ch.SetHandler(func(_ context.Context, _ MethodCall) Result {
		return Error("VERSION_ERROR", "Failed to get Windows version.", nil)
	})
	result, err := ch.Invoke(context.Background(), "getPlatformVersion", nil)
	if err != nil {
		t.Fatalf("Error invoking method: %s", err)
	}
	if result.Status != StatusError || result.Code != "VERSION_ERROR" {
		t.Errorf("Unexpected result %+v", result)
	}
}
