//go:build linux

package libc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// sourceMuslLoader names the musl probe mechanism.
const sourceMuslLoader = "ld-musl loader"

// muslArchNames maps Go architectures to the name musl embeds in its
// dynamic loader path, /lib/ld-musl-<arch>.so.1.
var muslArchNames = map[string]string{
	"amd64":   "x86_64",
	"arm64":   "aarch64",
	"386":     "i386",
	"arm":     "armhf",
	"ppc64le": "powerpc64le",
	"s390x":   "s390x",
}

// muslLoader returns the path of the musl dynamic loader for the running
// architecture, and whether it exists on disk.
func muslLoader() (string, bool) {
	arch, ok := muslArchNames[runtime.GOARCH]
	if !ok {
		return "", false
	}

	path := fmt.Sprintf("/lib/ld-musl-%s.so.1", arch)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// probeMusl executes the musl loader with no arguments and parses its
// version banner. The loader prints the banner to stderr and exits
// non-zero, so the exit status is deliberately not checked.
func probeMusl(ctx context.Context, loader string) (Info, error) {
	out, err := exec.CommandContext(ctx, loader).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Info{}, fmt.Errorf("run %s: %w", loader, err)
		}
	}

	version, err := parseMuslBanner(string(out))
	if err != nil {
		return Info{}, fmt.Errorf("probe %s: %w", loader, err)
	}

	return Info{
		Flavor:  FlavorMusl,
		Version: version,
		Source:  sourceMuslLoader,
	}, nil
}
