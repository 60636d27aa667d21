package platform

import (
	"golang.org/x/sys/windows"
)

const platformName = "Windows"

func osVersion() (Version, error) {
	// RtlGetVersion reads from the PEB and reports the true OS version regardless of the
	// process's compatibility manifest.
	info := windows.RtlGetVersion()
	return Version{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildNumber,
	}, nil
}
