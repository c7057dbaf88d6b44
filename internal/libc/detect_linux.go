//go:build linux

package libc

import (
	"context"
	"fmt"
	"os/exec"
)

// detect probes for the host C library on Linux.
//
// The musl loader is checked first: its presence on disk is definitive for a
// musl system, while glibc probes can succeed on musl hosts that ship a
// compatibility layer. If no musl loader is found (or it cannot be queried),
// detection falls through to glibc.
func detect(ctx context.Context) (Info, error) {
	if loader, ok := muslLoader(); ok {
		info, err := probeMusl(ctx, loader)
		if err == nil {
			return info, nil
		}
		// Loader exists but would not yield a version; fall through to glibc
		// rather than failing outright.
	}

	version, source, err := glibcVersion(ctx)
	if err != nil {
		return Info{Flavor: FlavorUnknown}, fmt.Errorf("detect C library: %w", err)
	}

	return Info{
		Flavor:  FlavorGlibc,
		Version: version,
		Source:  source,
	}, nil
}

// CacheTarget returns the file whose identity should key cached detection
// results: the musl loader when present, otherwise the ldd executable the
// glibc fallback would run. A libc upgrade replaces either file, which
// invalidates any cache keyed on it.
func CacheTarget() (string, bool) {
	if loader, ok := muslLoader(); ok {
		return loader, true
	}
	if path, err := exec.LookPath("ldd"); err == nil {
		return path, true
	}
	return "", false
}
