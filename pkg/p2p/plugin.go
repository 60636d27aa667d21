package p2p

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/p2pconn/p2p-connection/internal/log"
	"github.com/p2pconn/p2p-connection/pkg/channel"
	"github.com/p2pconn/p2p-connection/pkg/platform"
)

// VersionErrorCode identifies a failed OS version query in an error result.
const VersionErrorCode = "VERSION_ERROR"

// Plugin is the native half of the peer-to-peer connection plugin. Construct it with Register
// and release it with Close; the plugin must outlive every channel it binds.
type Plugin struct {
	method    *channel.MethodChannel
	events    map[string]*channel.EventChannel
	apartment *platform.Apartment
	osVersion func() (platform.Version, error)
	service   ServiceManager
	ble       BleManager

	closeOnce sync.Once
	closeErr  error
}

// Option customizes a Plugin during registration.
type Option func(*Plugin)

// WithServiceManager attaches the collaborator that handles adapter and hotspot methods.
func WithServiceManager(manager ServiceManager) Option {
	return func(p *Plugin) { p.service = manager }
}

// WithBleManager attaches the collaborator that handles "ble#"-prefixed methods.
func WithBleManager(manager BleManager) Option {
	return func(p *Plugin) { p.ble = manager }
}

// WithVersionProber overrides the OS version query. Tests use it to simulate query failure.
func WithVersionProber(prober func() (platform.Version, error)) Option {
	return func(p *Plugin) { p.osVersion = prober }
}

// Register constructs the plugin, acquires the platform apartment guard, and binds the method
// channel and event channels on messenger. Registration failures are fatal startup conditions
// for a host, so callers typically do not attempt recovery.
func Register(messenger channel.Messenger, options ...Option) (*Plugin, error) {
	apartment, err := platform.EnterApartment()
	if err != nil {
		return nil, fmt.Errorf("p2p: platform initialization failed: %w", err)
	}
	plugin := &Plugin{
		apartment: apartment,
		osVersion: platform.OSVersion,
		events:    make(map[string]*channel.EventChannel),
	}
	for _, option := range options {
		option(plugin)
	}
	for _, name := range []string{
		ClientStateChannelName,
		HotspotStateChannelName,
		BleScanResultChannelName,
		BleConnectionStateChannelName,
		BleReceivedDataChannelName,
	} {
		plugin.events[name] = channel.NewEventChannel(name)
	}
	plugin.method = channel.NewMethodChannel(messenger, MethodChannelName)
	plugin.method.SetHandler(plugin.handleCall)
	log.Info("Registered plugin on channel %s", MethodChannelName)
	return plugin, nil
}

// Events returns the named event channel, or nil if name is not one of the plugin's streams.
func (p *Plugin) Events(name string) *channel.EventChannel {
	return p.events[name]
}

// Close unbinds the method channel, closes the event streams, disposes any attached
// collaborators, and releases the platform apartment guard. Close is idempotent.
//
// Call Close from the goroutine that called Register: on Windows the apartment guard is bound
// to that goroutine's OS thread.
func (p *Plugin) Close() error {
	p.closeOnce.Do(func() {
		p.method.SetHandler(nil)
		for _, events := range p.events {
			events.Close()
		}
		var errs []error
		if p.ble != nil {
			errs = append(errs, p.ble.Dispose())
		}
		if p.service != nil {
			errs = append(errs, p.service.Dispose())
		}
		p.apartment.Leave()
		p.closeErr = errors.Join(errs...)
		log.Info("Unregistered plugin from channel %s", MethodChannelName)
	})
	return p.closeErr
}

func (p *Plugin) handleCall(ctx context.Context, call channel.MethodCall) channel.Result {
	switch request := parseRequest(call.Method); request.kind {
	case requestPlatformVersion:
		return p.platformVersion()
	case requestBle:
		if p.ble == nil {
			log.Debug("No BLE manager attached; rejecting %s", call.Method)
			return channel.NotImplemented()
		}
		return p.ble.HandleMethod(ctx, request.op, call.Arguments)
	case requestService:
		if p.service == nil {
			log.Debug("No service manager attached; rejecting %s", call.Method)
			return channel.NotImplemented()
		}
		return p.service.HandleMethod(ctx, request.op, call.Arguments)
	default:
		log.Debug("Unrecognized method %s", call.Method)
		return channel.NotImplemented()
	}
}

func (p *Plugin) platformVersion() channel.Result {
	version, err := p.osVersion()
	if err != nil {
		log.Error("OS version query failed: %s", err)
		return channel.Error(VersionErrorCode, fmt.Sprintf("Failed to get %s version.", platform.Name()), nil)
	}
	return channel.Success(fmt.Sprintf("%s %s", platform.Name(), version))
}
