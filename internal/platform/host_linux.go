//go:build linux

package platform

import (
	"context"
	"fmt"

	"github.com/emiller/platformprobe/internal/libc"
)

// HostTags computes the platform tags the running Linux host supports from
// its detected C library, best first.
func HostTags(ctx context.Context) ([]string, error) {
	info, err := libc.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute platform tags: %w", err)
	}
	return TagsFor(info)
}
