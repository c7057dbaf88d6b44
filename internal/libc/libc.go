// Package libc detects the C library present on the running host and the
// version it reports. On glibc systems the version comes straight from the
// runtime's own accessor (or from ldd when cgo is unavailable); on musl
// systems it is parsed from the dynamic loader's banner.
package libc

import (
	"context"
	"errors"
)

// Flavor identifies a C library implementation.
type Flavor string

// Known C library flavors.
const (
	FlavorGlibc   Flavor = "glibc"
	FlavorMusl    Flavor = "musl"
	FlavorUnknown Flavor = "unknown"
)

// ErrUnsupported is returned when the host platform exposes no C library
// version accessor this package knows how to query.
var ErrUnsupported = errors.New("no C library version accessor on this platform")

// Info describes the detected C library.
type Info struct {
	// Flavor is the library implementation (glibc, musl).
	Flavor Flavor `json:"flavor" yaml:"flavor"`

	// Version is the version identifier exactly as the platform reported it,
	// e.g. "2.31" or "1.2.4".
	Version string `json:"version" yaml:"version"`

	// Source names the mechanism that produced the version
	// (e.g. "gnu_get_libc_version", "ldd --version", "ld-musl loader").
	Source string `json:"source" yaml:"source"`
}

// Detect queries the host for its C library and version.
// The context bounds any child processes spawned while probing.
func Detect(ctx context.Context) (Info, error) {
	return detect(ctx)
}
