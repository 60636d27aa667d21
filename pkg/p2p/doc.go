/*
Package p2p implements the native side of the peer-to-peer connection plugin.

The plugin binds one method channel for commands from the host application and five event
channels for state streams. Commands are parsed into typed requests and dispatched
synchronously on the delivering goroutine. The device-management collaborators the dispatcher
routes to (ServiceManager for adapter and hotspot state, BleManager for the GATT
credential-exchange service) are seams: the plugin ships without implementations and answers
NotImplemented for their methods until one is attached.
*/
package p2p
