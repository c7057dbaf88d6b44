//go:build darwin

package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"syscall"
)

// HostTags computes the macosx platform tags the running machine supports,
// best first, from the OS product version and the executable architectures.
func HostTags(_ context.Context) ([]string, error) {
	version, err := syscall.Sysctl("kern.osproductversion")
	if err != nil {
		return nil, fmt.Errorf("read macOS product version: %w", err)
	}

	major, minor, err := parseMajorMinor(version)
	if err != nil {
		return nil, fmt.Errorf("macOS product version: %w", err)
	}

	arches := hostArches()

	var tags []string
	if major >= 11 {
		for m := major; m >= 11; m-- {
			for _, a := range arches {
				tags = append(tags, fmt.Sprintf("macosx_%d_0_%s", m, a))
			}
		}
		// Every 11+ machine also runs binaries built for the 10.x targets.
		for n := 16; n >= 4; n-- {
			for _, a := range arches {
				tags = append(tags, fmt.Sprintf("macosx_10_%d_%s", n, a))
			}
		}
		return tags, nil
	}

	if major != 10 {
		return nil, fmt.Errorf("unrecognized macOS version %q", strings.TrimSpace(version))
	}
	for n := minor; n >= 4; n-- {
		for _, a := range arches {
			tags = append(tags, fmt.Sprintf("macosx_10_%d_%s", n, a))
		}
	}
	return tags, nil
}

// hostArches returns the executable architectures, most specific first.
// Every in-support Mac runs x86_64 code, natively or through Rosetta 2;
// arm64 is included when built for arm64 or when an x86_64 build finds
// itself translated.
func hostArches() []string {
	arches := []string{"x86_64", "universal2", "intel", "fat64", "fat32", "universal"}
	if runtime.GOARCH == "arm64" || translatedByRosetta() {
		arches = append([]string{"arm64"}, arches...)
	}
	return arches
}

// translatedByRosetta reports whether an x86_64 process is running under
// Rosetta 2 translation. A missing sysctl means a macOS too old to have
// Rosetta 2 at all.
func translatedByRosetta() bool {
	v, err := syscall.SysctlUint32("sysctl.proc_translated")
	if err != nil {
		// ENOENT: the sysctl predates this macOS; no Rosetta 2 here.
		return false
	}
	return v == 1
}
