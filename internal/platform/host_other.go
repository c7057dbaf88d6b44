//go:build !linux && !darwin && !windows

package platform

import (
	"context"
	"fmt"
	"runtime"
)

// HostTags is a stub for operating systems without a defined tag family.
func HostTags(_ context.Context) ([]string, error) {
	return nil, fmt.Errorf("no platform tag support for %s", runtime.GOOS)
}
