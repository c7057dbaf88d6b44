//go:build linux && !cgo

package libc

import (
	"context"
	"fmt"
	"os/exec"
)

// sourceLdd names the fallback mechanism used when cgo is unavailable.
const sourceLdd = "ldd --version"

// glibcVersion shells out to ldd, which on glibc systems is a script that
// prints the library's version banner. Used only on builds where the native
// accessor cannot be linked.
func glibcVersion(ctx context.Context) (string, string, error) {
	out, err := exec.CommandContext(ctx, "ldd", "--version").Output()
	if err != nil {
		return "", "", fmt.Errorf("run ldd: %w", err)
	}

	version, err := parseLddBanner(string(out))
	if err != nil {
		return "", "", err
	}
	return version, sourceLdd, nil
}
