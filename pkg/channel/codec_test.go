package channel

import (
	"errors"
	"reflect"
	"testing"
)

func TestMethodCallRoundTrip(t *testing.T) {
	call := MethodCall{
		Method: "createHotspot",
		Arguments: map[string]interface{}{
			"ssid":    "DIRECT-ab",
			"channel": float64(6),
		},
	}
	payload, err := EncodeMethodCall(call)
	if err != nil {
		t.Fatalf("Error encoding method call: %s", err)
	}
	decoded, err := DecodeMethodCall(payload)
	if err != nil {
		t.Fatalf("Error decoding method call: %s", err)
	}
	if !reflect.DeepEqual(call, decoded) {
		t.Errorf("Expected %+v but got %+v", call, decoded)
	}
}

func TestMethodCallWithoutArguments(t *testing.T) {
	payload, err := EncodeMethodCall(MethodCall{Method: "getPlatformVersion"})
	if err != nil {
		t.Fatalf("Error encoding method call: %s", err)
	}
	decoded, err := DecodeMethodCall(payload)
	if err != nil {
		t.Fatalf("Error decoding method call: %s", err)
	}
	if decoded.Method != "getPlatformVersion" {
		t.Errorf("Unexpected method name %q", decoded.Method)
	}
	if decoded.Arguments != nil {
		t.Errorf("Expected nil arguments, got %+v", decoded.Arguments)
	}
}

func TestEncodeMethodCallRequiresName(t *testing.T) {
	if _, err := EncodeMethodCall(MethodCall{}); !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("Expected ErrMalformedEnvelope but got %v", err)
	}
}

func TestDecodeMethodCallRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "not json", "{}", `{"method": 7}`, `{"method": ""}`} {
		if _, err := DecodeMethodCall([]byte(payload)); !errors.Is(err, ErrMalformedEnvelope) {
			t.Errorf("Expected ErrMalformedEnvelope for %q but got %v", payload, err)
		}
	}
}

func TestResultRoundTrip(t *testing.T) {
	results := []Result{
		Success("Windows 10.0 Build 19045"),
		Success(nil),
		Error("VERSION_ERROR", "Failed to get Windows version.", nil),
		Error("BAD_ARGS", "missing ssid", map[string]interface{}{"field": "ssid"}),
		NotImplemented(),
	}
	for _, result := range results {
		payload, err := EncodeResult(result)
		if err != nil {
			t.Fatalf("Error encoding %+v: %s", result, err)
		}
		decoded, err := DecodeResult(payload)
		if err != nil {
			t.Fatalf("Error decoding %+v: %s", result, err)
		}
		if !reflect.DeepEqual(result, decoded) {
			t.Errorf("Expected %+v but got %+v", result, decoded)
		}
	}
}

func TestEncodeErrorResultRequiresCode(t *testing.T) {
	if _, err := EncodeResult(Result{Status: StatusError}); !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("Expected ErrMalformedEnvelope but got %v", err)
	}
}

func TestDecodeResultRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "[1]", "{}", `{"status": "partial"}`, `{"status": "error"}`} {
		if _, err := DecodeResult([]byte(payload)); !errors.Is(err, ErrMalformedEnvelope) {
			t.Errorf("Expected ErrMalformedEnvelope for %q but got %v", payload, err)
		}
	}
}
