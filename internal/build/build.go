// Package build holds build-time information.
package build

import "runtime/debug"

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Revision returns the VCS revision the binary was built from, or an
// empty string when the build carries no VCS metadata.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
