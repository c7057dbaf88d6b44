// Package version carries build metadata for the platformprobe binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Injected at build time via -ldflags, e.g.
//
//	-ldflags "-X github.com/emiller/platformprobe/internal/version.Version=v1.2.0"
var (
	// Version is the release version, "dev" for untagged builds.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the full version line for the version subcommand.
func String() string {
	return fmt.Sprintf("platformprobe %s (commit %s, built %s, %s, %s/%s)",
		resolve(), Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version identifier.
func Short() string {
	return resolve()
}

// resolve prefers the ldflags-injected version and falls back to the
// module version stamped by the Go toolchain (go install @version).
func resolve() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
