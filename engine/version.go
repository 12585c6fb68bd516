package engine

import (
	"strconv"
	"strings"
)

// Version is the engine release shipped with this module. Wrappers use it to
// decide which spelling of version-dependent options to pass.
const Version = "1.4.2"

// VersionAtLeast reports whether the engine version is at least major.minor.
func VersionAtLeast(major, minor int) bool {
	return versionAtLeast(Version, major, minor)
}

func versionAtLeast(version string, major, minor int) bool {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return false
	}
	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if maj != major {
		return maj > major
	}
	return min >= minor
}
