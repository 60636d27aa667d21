package p2p

import "github.com/google/uuid"

// LogTag labels the plugin's log output.
const LogTag = "FlutterP2pConnection"

// MethodChannelName is the channel the host application sends commands on.
const MethodChannelName = "flutter_p2p_connection"

// Event channel names. Each carries one state stream from the plugin to the host application.
const (
	ClientStateChannelName        = "flutter_p2p_connection_clientState"
	HotspotStateChannelName       = "flutter_p2p_connection_hotspotState"
	BleScanResultChannelName      = "flutter_p2p_connection_bleScanResult"
	BleConnectionStateChannelName = "flutter_p2p_connection_bleConnectionState"
	BleReceivedDataChannelName    = "flutter_p2p_connection_bleReceivedData"
)

// GATT identifiers for the BLE credential-exchange service. A group owner advertises the
// service and exposes the hotspot's network name and pre-shared key as two readable
// characteristics.
var (
	CredentialServiceUUID  = uuid.MustParse("0f0540bd-4a04-46d0-b90d-b0447453ec3a")
	SSIDCharacteristicUUID = uuid.MustParse("7a374008-fc31-4476-be4d-1b3347233f00")
	PSKCharacteristicUUID  = uuid.MustParse("81a5ec62-a8b1-48b0-b533-938636a57ba4")
)
