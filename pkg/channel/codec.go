package channel

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Status enumerates the three possible outcomes of a method call.
type Status int

const (
	// StatusSuccess carries a result value back to the caller.
	StatusSuccess Status = iota
	// StatusError carries a machine-readable code and a human-readable message.
	StatusError
	// StatusNotImplemented signals that the plugin does not recognize the method.
	StatusNotImplemented
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusNotImplemented:
		return "notImplemented"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MethodCall is a named request with opaque arguments.
type MethodCall struct {
	Method    string
	Arguments interface{}
}

// Result is the tagged outcome of a method call. Exactly one variant is meaningful, selected by
// Status: Value for success, Code/Message/Details for errors. Callers construct Results through
// Success, Error and NotImplemented rather than filling in fields directly.
type Result struct {
	Status  Status
	Value   interface{}
	Code    string
	Message string
	Details interface{}
}

// Success wraps a result value.
func Success(value interface{}) Result {
	return Result{Status: StatusSuccess, Value: value}
}

// Error builds a structured error result. code is a short machine-readable identifier, message
// is for humans. details may be nil.
func Error(code, message string, details interface{}) Result {
	return Result{Status: StatusError, Code: code, Message: message, Details: details}
}

// NotImplemented signals an unrecognized method.
func NotImplemented() Result {
	return Result{Status: StatusNotImplemented}
}

// encodeValue renders an arbitrary value as raw JSON without committing the codec to a schema.
func encodeValue(value interface{}) (string, error) {
	wrapped, err := sjson.SetBytes([]byte(`{}`), "v", value)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
	}
	return gjson.GetBytes(wrapped, "v").Raw, nil
}

// EncodeMethodCall serializes a method call into its wire envelope.
func EncodeMethodCall(call MethodCall) ([]byte, error) {
	if call.Method == "" {
		return nil, fmt.Errorf("%w: empty method name", ErrMalformedEnvelope)
	}
	out, err := sjson.SetBytes([]byte(`{}`), "method", call.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
	}
	if call.Arguments != nil {
		raw, err := encodeValue(call.Arguments)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "args", []byte(raw)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
		}
	}
	return out, nil
}

// DecodeMethodCall parses a wire envelope back into a method call. Arguments decode to the
// generic JSON value types (nil, bool, float64, string, []interface{}, map[string]interface{}).
func DecodeMethodCall(payload []byte) (MethodCall, error) {
	if !gjson.ValidBytes(payload) {
		return MethodCall{}, fmt.Errorf("%w: invalid JSON", ErrMalformedEnvelope)
	}
	method := gjson.GetBytes(payload, "method")
	if method.Type != gjson.String || method.Str == "" {
		return MethodCall{}, fmt.Errorf("%w: missing method name", ErrMalformedEnvelope)
	}
	return MethodCall{
		Method:    method.Str,
		Arguments: gjson.GetBytes(payload, "args").Value(),
	}, nil
}

// EncodeResult serializes a result into its wire envelope.
func EncodeResult(result Result) ([]byte, error) {
	out, err := sjson.SetBytes([]byte(`{}`), "status", result.Status.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
	}
	switch result.Status {
	case StatusSuccess:
		if result.Value != nil {
			out, err = setRawField(out, "value", result.Value)
		}
	case StatusError:
		if result.Code == "" {
			return nil, fmt.Errorf("%w: error result requires a code", ErrMalformedEnvelope)
		}
		if out, err = sjson.SetBytes(out, "code", result.Code); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
		}
		if out, err = sjson.SetBytes(out, "message", result.Message); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
		}
		if result.Details != nil {
			out, err = setRawField(out, "details", result.Details)
		}
	case StatusNotImplemented:
		// Status alone is the whole payload.
	default:
		return nil, fmt.Errorf("%w: unknown status %d", ErrMalformedEnvelope, int(result.Status))
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func setRawField(envelope []byte, path string, value interface{}) ([]byte, error) {
	raw, err := encodeValue(value)
	if err != nil {
		return nil, err
	}
	out, err := sjson.SetRawBytes(envelope, path, []byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
	}
	return out, nil
}

// DecodeResult parses a wire envelope back into a result.
func DecodeResult(payload []byte) (Result, error) {
	if !gjson.ValidBytes(payload) {
		return Result{}, fmt.Errorf("%w: invalid JSON", ErrMalformedEnvelope)
	}
	status := gjson.GetBytes(payload, "status")
	switch status.Str {
	case "success":
		return Success(gjson.GetBytes(payload, "value").Value()), nil
	case "error":
		code := gjson.GetBytes(payload, "code").Str
		if code == "" {
			return Result{}, fmt.Errorf("%w: error result missing code", ErrMalformedEnvelope)
		}
		message := gjson.GetBytes(payload, "message").Str
		return Error(code, message, gjson.GetBytes(payload, "details").Value()), nil
	case "notImplemented":
		return NotImplemented(), nil
	}
	return Result{}, fmt.Errorf("%w: unknown status %q", ErrMalformedEnvelope, status.Str)
}
