package utils

import (
	"runtime/debug"
)

const (
	unknownVersion = "unknown"
	develVersion   = "(devel)"
)

// Version is set at build time with -ldflags "-X github.com/temirov/tree2clip/internal/utils.Version=v1.2.3".
var Version = EmptyString

// GetApplicationVersion reports the linker-provided version, falling back to the
// module version recorded in the binary's build information.
func GetApplicationVersion() string {
	if Version != EmptyString {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
