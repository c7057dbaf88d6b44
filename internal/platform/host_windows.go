//go:build windows

package platform

import (
	"context"
	"fmt"
	"runtime"
)

// HostTags returns the Windows platform tags for the build architecture,
// best first.
func HostTags(_ context.Context) ([]string, error) {
	switch runtime.GOARCH {
	case "amd64":
		return []string{"win_amd64", "win32"}, nil
	case "386":
		return []string{"win32"}, nil
	case "arm64":
		return []string{"win_arm64"}, nil
	default:
		return nil, fmt.Errorf("no Windows platform tags for %s", runtime.GOARCH)
	}
}
