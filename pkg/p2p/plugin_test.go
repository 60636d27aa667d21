package p2p_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/p2pconn/p2p-connection/mocks"
	"github.com/p2pconn/p2p-connection/pkg/channel"
	"github.com/p2pconn/p2p-connection/pkg/p2p"
	"github.com/p2pconn/p2p-connection/pkg/platform"
)

var _ = Describe("Plugin", func() {
	var (
		ctrl      *gomock.Controller
		messenger *channel.HostMessenger
		method    *channel.MethodChannel
		plugin    *p2p.Plugin
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		messenger = channel.NewHostMessenger()
		method = channel.NewMethodChannel(messenger, p2p.MethodChannelName)
	})

	AfterEach(func() {
		if plugin != nil {
			Expect(plugin.Close()).To(Succeed())
			plugin = nil
		}
		ctrl.Finish()
	})

	register := func(options ...p2p.Option) {
		var err error
		plugin, err = p2p.Register(messenger, options...)
		Expect(err).NotTo(HaveOccurred())
	}

	invoke := func(name string, arguments interface{}) channel.Result {
		result, err := method.Invoke(context.Background(), name, arguments)
		Expect(err).NotTo(HaveOccurred())
		return result
	}

	It("reports the platform version", func() {
		register()
		result := invoke("getPlatformVersion", nil)
		Expect(result.Status).To(Equal(channel.StatusSuccess))
		Expect(result.Value).To(MatchRegexp(`^\S+ \d+\.\d+ Build \d+$`))
	})

	It("returns consistent results across repeated version queries", func() {
		register()
		first := invoke("getPlatformVersion", nil)
		second := invoke("getPlatformVersion", nil)
		Expect(second).To(Equal(first))
	})

	It("maps version query failures to VERSION_ERROR", func() {
		register(p2p.WithVersionProber(func() (platform.Version, error) {
			return platform.Version{}, errors.New("probe failed")
		}))
		result := invoke("getPlatformVersion", nil)
		Expect(result.Status).To(Equal(channel.StatusError))
		Expect(result.Code).To(Equal(p2p.VersionErrorCode))
		Expect(result.Message).To(Equal(fmt.Sprintf("Failed to get %s version.", platform.Name())))
	})

	It("answers NotImplemented for unrecognized methods", func() {
		register()
		for _, name := range []string{"unknownMethod", "createHotspot", "ble#startScan", "checkBluetoothEnabled"} {
			Expect(invoke(name, nil).Status).To(Equal(channel.StatusNotImplemented), "method %s", name)
		}
	})

	It("forwards ble# methods to an attached BLE manager", func() {
		ble := mocks.NewMockBleManager(ctrl)
		ble.EXPECT().HandleMethod(gomock.Any(), "startScan", nil).Return(channel.Success("scanning"))
		ble.EXPECT().Dispose().Return(nil)
		register(p2p.WithBleManager(ble))
		result := invoke("ble#startScan", nil)
		Expect(result.Status).To(Equal(channel.StatusSuccess))
		Expect(result.Value).To(Equal("scanning"))
	})

	It("forwards service methods to an attached service manager", func() {
		service := mocks.NewMockServiceManager(ctrl)
		service.EXPECT().HandleMethod(gomock.Any(), "checkBluetoothEnabled", nil).Return(channel.Success(true))
		service.EXPECT().Dispose().Return(nil)
		register(p2p.WithServiceManager(service))
		Expect(invoke("checkBluetoothEnabled", nil).Value).To(Equal(true))
	})

	It("registers then closes cleanly with no calls in between", func() {
		register()
		Expect(plugin.Close()).To(Succeed())
		Expect(plugin.Close()).To(Succeed())
		_, err := method.Invoke(context.Background(), "getPlatformVersion", nil)
		Expect(err).To(MatchError(channel.ErrChannelUnbound))
		plugin = nil
	})

	It("closes its event channels on Close", func() {
		register()
		events := plugin.Events(p2p.HotspotStateChannelName)
		Expect(events).NotTo(BeNil())
		subscriber := events.Subscribe()
		Expect(plugin.Close()).To(Succeed())
		Expect(subscriber).To(BeClosed())
		plugin = nil
	})

	It("exposes all five event streams", func() {
		register()
		for _, name := range []string{
			p2p.ClientStateChannelName,
			p2p.HotspotStateChannelName,
			p2p.BleScanResultChannelName,
			p2p.BleConnectionStateChannelName,
			p2p.BleReceivedDataChannelName,
		} {
			Expect(plugin.Events(name)).NotTo(BeNil(), "channel %s", name)
		}
		Expect(plugin.Events("flutter_p2p_connection_other")).To(BeNil())
	})
})
