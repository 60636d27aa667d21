// Package platform answers version queries about the operating system the plugin runs on and
// guards the process-wide native-API initialization some platforms require.
package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies an operating system release.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d Build %d", v.Major, v.Minor, v.Build)
}

// Name returns the human-readable platform name, e.g. "Windows".
func Name() string {
	return platformName
}

// OSVersion queries the operating system for its release version. The query is synchronous and
// reads kernel-provided data only.
func OSVersion() (Version, error) {
	return osVersion()
}

// parseRelease extracts version numbers from a kernel release string such as
// "6.8.0-41-generic" or "23.5.0".
func parseRelease(release string) (Version, error) {
	release = strings.TrimSpace(release)
	numbers := strings.FieldsFunc(release, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(numbers) < 2 {
		return Version{}, fmt.Errorf("unrecognized kernel release %q", release)
	}
	var fields [3]uint32
	for i := 0; i < len(numbers) && i < 3; i++ {
		n, err := strconv.ParseUint(numbers[i], 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("unrecognized kernel release %q: %s", release, err)
		}
		fields[i] = uint32(n)
	}
	return Version{Major: fields[0], Minor: fields[1], Build: fields[2]}, nil
}
