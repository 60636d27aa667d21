package platform

import (
	"golang.org/x/sys/unix"
)

const platformName = "Linux"

func osVersion() (Version, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Version{}, err
	}
	return parseRelease(unix.ByteSliceToString(uts.Release[:]))
}
