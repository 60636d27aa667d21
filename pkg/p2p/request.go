package p2p

import "strings"

// requestKind tags the dispatch variant a method name parses into.
type requestKind int

const (
	requestUnknown requestKind = iota
	requestPlatformVersion
	requestService
	requestBle
)

// blePrefix namespaces BLE operations on the shared method channel.
const blePrefix = "ble#"

// serviceMethods are the adapter and hotspot queries that route to the ServiceManager
// collaborator.
var serviceMethods = map[string]struct{}{
	"checkBluetoothEnabled": {},
}

type request struct {
	kind requestKind
	// op is the BLE operation with the channel prefix stripped, or the service method name.
	op string
}

// parseRequest maps a method name onto a typed request. Unrecognized names fall through to
// requestUnknown rather than an error, since the dispatch contract answers them with
// NotImplemented.
func parseRequest(method string) request {
	if method == "getPlatformVersion" {
		return request{kind: requestPlatformVersion}
	}
	if strings.HasPrefix(method, blePrefix) {
		return request{kind: requestBle, op: strings.TrimPrefix(method, blePrefix)}
	}
	if _, ok := serviceMethods[method]; ok {
		return request{kind: requestService, op: method}
	}
	return request{kind: requestUnknown}
}
