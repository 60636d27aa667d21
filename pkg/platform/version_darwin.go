package platform

import (
	"golang.org/x/sys/unix"
)

const platformName = "macOS"

func osVersion() (Version, error) {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return Version{}, err
	}
	return parseRelease(release)
}
