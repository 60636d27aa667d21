package platform

import (
	"runtime"
	"sync"

	"golang.org/x/sys/windows"
)

// Apartment represents COM initialization on the calling thread. WinRT-backed APIs (hotspot
// tethering, BLE GATT) require it before first use.
type Apartment struct {
	leave sync.Once
}

// EnterApartment initializes a single-threaded COM apartment on the calling goroutine's OS
// thread and pins the goroutine to that thread, since apartment membership is per-thread.
func EnterApartment() (*Apartment, error) {
	runtime.LockOSThread()
	if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return &Apartment{}, nil
}

// Leave tears the apartment down and releases the OS thread. Leave must run on the goroutine
// that called EnterApartment, since CoUninitialize only acts on the calling thread's
// apartment. Leave is idempotent.
func (a *Apartment) Leave() {
	a.leave.Do(func() {
		windows.CoUninitialize()
		runtime.UnlockOSThread()
	})
}
