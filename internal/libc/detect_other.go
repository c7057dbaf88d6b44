//go:build !linux

package libc

import "context"

// detect is a stub for platforms without a queryable C library version.
// macOS and Windows identify binary compatibility through OS version and
// architecture instead; see the platform package.
func detect(_ context.Context) (Info, error) {
	return Info{Flavor: FlavorUnknown}, ErrUnsupported
}

// CacheTarget reports that there is nothing worth caching here.
func CacheTarget() (string, bool) {
	return "", false
}
