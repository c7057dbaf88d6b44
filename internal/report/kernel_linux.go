//go:build linux

package report

import (
	"os"
	"strings"
)

// kernelRelease reads the kernel release string from procfs.
func kernelRelease() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
