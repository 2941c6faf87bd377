// Package misc keeps build identification helpers used across the program.
package misc

import "runtime/debug"

const appName = "screenwriting"

// Set at build time with -ldflags "-X ...".
var (
	version = ""
	gitHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion returns program version - either set at build time or taken from
// module build information.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
