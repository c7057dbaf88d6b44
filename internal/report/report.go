// Package report aggregates everything platformprobe knows about the host
// into a single document: OS and architecture, kernel, distribution, the
// detected C library, and the supported platform tags.
package report

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/emiller/platformprobe/internal/filelock"
	"github.com/emiller/platformprobe/internal/libc"
	"github.com/emiller/platformprobe/internal/osrelease"
	"github.com/emiller/platformprobe/internal/platform"
)

// Report is one host platform snapshot.
type Report struct {
	// ID uniquely identifies this probe run.
	ID string `json:"id" yaml:"id"`

	// GeneratedAt is when the snapshot was taken.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// OS and Arch are the Go platform names (linux/amd64 etc.).
	OS   string `json:"os" yaml:"os"`
	Arch string `json:"arch" yaml:"arch"`

	// Kernel is the kernel release, when the OS exposes one.
	Kernel string `json:"kernel,omitempty" yaml:"kernel,omitempty"`

	// OSRelease identifies the Linux distribution, when present.
	OSRelease *osrelease.Info `json:"os_release,omitempty" yaml:"os_release,omitempty"`

	// Libc is the detected C library, when the OS has a queryable one.
	Libc *libc.Info `json:"libc,omitempty" yaml:"libc,omitempty"`

	// Tags are the supported platform tags, best first.
	Tags []string `json:"tags" yaml:"tags"`
}

// Collect builds a report for the running host. A pre-detected C library
// may be passed in (e.g. from the probe cache) to avoid re-probing; with
// nil, detection runs as part of collection. Partial information is not an
// error: fields the host cannot provide stay empty.
func Collect(ctx context.Context, detected *libc.Info) (*Report, error) {
	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		Kernel:      kernelRelease(),
	}

	if osr, err := osrelease.Read(); err == nil && osr.Name != "" {
		r.OSRelease = &osr
	}

	if detected == nil {
		if info, err := libc.Detect(ctx); err == nil {
			detected = &info
		}
	}
	r.Libc = detected

	var tags []string
	var err error
	if detected != nil && runtime.GOOS == "linux" {
		tags, err = platform.TagsFor(*detected)
	} else {
		tags, err = platform.HostTags(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("collect report: %w", err)
	}
	r.Tags = tags

	return r, nil
}

// Export renders the report in the given format and writes it to path
// atomically, serialized against concurrent exports to the same file.
func (r *Report) Export(path, format string) error {
	data, err := r.Render(format)
	if err != nil {
		return err
	}
	return filelock.WithLock(path+".lock", func() error {
		return filelock.AtomicWrite(path, data, 0o644)
	})
}
