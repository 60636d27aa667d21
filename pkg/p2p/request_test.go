package p2p

import "testing"

func TestParseRequest(t *testing.T) {
	cases := []struct {
		method string
		kind   requestKind
		op     string
	}{
		{"getPlatformVersion", requestPlatformVersion, ""},
		{"checkBluetoothEnabled", requestService, "checkBluetoothEnabled"},
		{"ble#startScan", requestBle, "startScan"},
		{"ble#", requestBle, ""},
		{"unknownMethod", requestUnknown, ""},
		{"getplatformversion", requestUnknown, ""}, // method names are case sensitive
		{"", requestUnknown, ""},
	}
	for _, c := range cases {
		got := parseRequest(c.method)
		if got.kind != c.kind || got.op != c.op {
			t.Errorf("parseRequest(%q) = %+v, expected kind %d op %q", c.method, got, c.kind, c.op)
		}
	}
}
