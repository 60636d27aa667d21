package p2p

import (
	"context"

	"github.com/p2pconn/p2p-connection/pkg/channel"
)

// ServiceManager owns adapter-state queries and hotspot lifecycle on behalf of the plugin.
// The dispatcher forwards recognized service methods here when a collaborator is attached and
// answers NotImplemented otherwise.
type ServiceManager interface {
	// HandleMethod runs one service command and returns its result.
	HandleMethod(ctx context.Context, method string, arguments interface{}) channel.Result

	// Dispose releases any OS resources the manager holds. Called once when the plugin closes.
	Dispose() error
}

// BleManager owns the GATT credential-exchange service and scan/connect lifecycle. Methods
// arrive with the "ble#" channel prefix already stripped.
type BleManager interface {
	// HandleMethod runs one BLE operation and returns its result.
	HandleMethod(ctx context.Context, operation string, arguments interface{}) channel.Result

	// Dispose stops advertising and tears the GATT service down. Called once when the plugin
	// closes.
	Dispose() error
}
