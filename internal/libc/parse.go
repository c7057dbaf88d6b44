package libc

import (
	"fmt"
	"regexp"
	"strings"
)

// matchGlibcVersion validates the version field extracted from ldd output,
// e.g. "2.31".
var matchGlibcVersion = regexp.MustCompile(`^\d+\.\d+$`)

// matchMuslVersion extracts the version from the musl loader's banner,
// which looks like:
//
//	musl libc (x86_64)
//	Version 1.2.4
//	Dynamic Program Loader
//	Usage: /lib/ld-musl-x86_64.so.1 [options] [--] pathname [args]
var matchMuslVersion = regexp.MustCompile(`Version (\d+\.\d+(?:\.\d+)?)`)

// parseLddBanner extracts the glibc version from `ldd --version` output.
// The first line ends with the version, e.g.
// "ldd (Ubuntu GLIBC 2.31-0ubuntu9.9) 2.31".
func parseLddBanner(out string) (string, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "", fmt.Errorf("empty ldd output")
	}

	fields := strings.Fields(lines[0])
	version := fields[len(fields)-1]
	if !matchGlibcVersion.MatchString(version) {
		return "", fmt.Errorf("unrecognized ldd banner %q", lines[0])
	}

	return version, nil
}

// parseMuslBanner extracts the musl version from the loader's stderr banner.
func parseMuslBanner(out string) (string, error) {
	m := matchMuslVersion.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("no version line in musl loader output")
	}
	return m[1], nil
}
