package platform

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	linuxTagRe  = regexp.MustCompile(`^(many|musl)linux_([0-9]+)_([0-9]+)_(.*)$`)
	macosxTagRe = regexp.MustCompile(`^macosx_([0-9]+)_([0-9]+)_(.*)$`)
)

// Expand returns every platform tag guaranteed to be supported on any
// machine that supports the given tag, best first. A machine that runs
// manylinux_2_31 binaries also runs manylinux_2_30 and below; a macOS 14
// x86_64 machine also runs every older deployment target and the fat
// archive formats. Unrecognized tags pass through unchanged.
func Expand(tag string) []string {
	if m := linuxTagRe.FindStringSubmatch(tag); m != nil {
		return expandLinux(m[1], mustAtoi(m[2]), mustAtoi(m[3]), m[4])
	}
	if m := macosxTagRe.FindStringSubmatch(tag); m != nil {
		if major := mustAtoi(m[1]); major >= 10 {
			return expandMacosx(major, mustAtoi(m[2]), m[3])
		}
	}
	return []string{tag}
}

func expandLinux(variant string, major, minor int, arch string) []string {
	var tags []string
	for n := minor; n >= 0; n-- {
		tags = append(tags, fmt.Sprintf("%slinux_%d_%d_%s", variant, major, n, arch))
		if variant != "many" {
			continue
		}
		// Legacy aliases for the fixed manylinux profiles.
		switch {
		case major == 2 && n == 17:
			tags = append(tags, "manylinux2014_"+arch)
		case major == 2 && n == 12:
			tags = append(tags, "manylinux2010_"+arch)
		case major == 2 && n == 5:
			tags = append(tags, "manylinux1_"+arch)
		}
	}
	return tags
}

func expandMacosx(major, minor int, arch string) []string {
	// Knowing a machine runs universal2 binaries says nothing about which
	// half it would execute, so only concrete arches fan out to the fat
	// formats.
	var arches []string
	switch arch {
	case "x86_64":
		arches = []string{"x86_64", "universal2", "intel", "fat64", "fat32", "universal"}
	case "arm64":
		arches = []string{"arm64", "universal2"}
	default:
		arches = []string{arch}
	}

	max10Minor := 15
	if major == 10 {
		max10Minor = minor
	}

	var tags []string
	for m := major; m >= 11; m-- {
		for _, a := range arches {
			tags = append(tags, fmt.Sprintf("macosx_%d_0_%s", m, a))
		}
	}
	for n := max10Minor; n >= 0; n-- {
		for _, a := range arches {
			tags = append(tags, fmt.Sprintf("macosx_10_%d_%s", n, a))
		}
	}
	return tags
}

// mustAtoi converts digits already matched by a \d+ group.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}
