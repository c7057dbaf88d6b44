// Package platform computes binary-compatibility platform tags for the
// running host: which manylinux/musllinux/macosx/windows tag families a
// wheel-style artifact must carry to be loadable here. Tags are always
// ordered most-preferred first.
package platform

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/emiller/platformprobe/internal/libc"
)

// pyArchNames maps Go architectures to the architecture component used in
// platform tags.
var pyArchNames = map[string]string{
	"amd64":   "x86_64",
	"arm64":   "aarch64",
	"386":     "i686",
	"arm":     "armv7l",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",
}

// HostArch returns the tag architecture for the running build, or an error
// for architectures with no defined tag name.
func HostArch() (string, error) {
	arch, ok := pyArchNames[runtime.GOARCH]
	if !ok {
		return "", fmt.Errorf("no platform tag architecture for %s", runtime.GOARCH)
	}
	return arch, nil
}

// parseMajorMinor extracts the leading major.minor pair from a version
// string such as "2.31" or "1.2.4".
func parseMajorMinor(version string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("version %q has no minor component", version)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("version %q: bad major: %w", version, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("version %q: bad minor: %w", version, err)
	}
	return major, minor, nil
}

// ManylinuxTags returns the manylinux tags supported by a host running the
// given glibc version, best first. The ladder stops at 2.5, the oldest
// glibc any manylinux profile targets.
func ManylinuxTags(glibcVersion, arch string) ([]string, error) {
	major, minor, err := parseMajorMinor(glibcVersion)
	if err != nil {
		return nil, err
	}
	if major != 2 {
		return nil, fmt.Errorf("unsupported glibc major version in %q", glibcVersion)
	}

	var tags []string
	for n := minor; n >= 5; n-- {
		tags = append(tags, fmt.Sprintf("manylinux_%d_%d_%s", major, n, arch))
	}
	return tags, nil
}

// TagsFor returns the Linux tag ladder for an already-detected C library,
// using the running build's architecture.
func TagsFor(info libc.Info) ([]string, error) {
	arch, err := HostArch()
	if err != nil {
		return nil, err
	}

	switch info.Flavor {
	case libc.FlavorGlibc:
		return ManylinuxTags(info.Version, arch)
	case libc.FlavorMusl:
		return MusllinuxTags(info.Version, arch)
	default:
		return nil, fmt.Errorf("no tag family for C library flavor %q", info.Flavor)
	}
}

// MusllinuxTags returns the musllinux tags supported by a host running the
// given musl version, best first.
func MusllinuxTags(muslVersion, arch string) ([]string, error) {
	major, minor, err := parseMajorMinor(muslVersion)
	if err != nil {
		return nil, err
	}

	var tags []string
	for n := minor; n >= 0; n-- {
		tags = append(tags, fmt.Sprintf("musllinux_%d_%d_%s", major, n, arch))
	}
	return tags, nil
}
