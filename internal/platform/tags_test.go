package platform

import (
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/emiller/platformprobe/internal/libc"
)

// TestManylinuxTags verifies the glibc compatibility ladder.
func TestManylinuxTags(t *testing.T) {
	tests := []struct {
		name    string
		version string
		arch    string
		want    []string
		wantErr bool
	}{
		{
			name:    "glibc 2.8 x86_64",
			version: "2.8",
			arch:    "x86_64",
			want: []string{
				"manylinux_2_8_x86_64",
				"manylinux_2_7_x86_64",
				"manylinux_2_6_x86_64",
				"manylinux_2_5_x86_64",
			},
		},
		{
			name:    "ladder floor",
			version: "2.5",
			arch:    "aarch64",
			want:    []string{"manylinux_2_5_aarch64"},
		},
		{
			name:    "older than any profile",
			version: "2.4",
			arch:    "x86_64",
			want:    nil,
		},
		{
			name:    "glibc 3 rejected",
			version: "3.0",
			arch:    "x86_64",
			wantErr: true,
		},
		{
			name:    "missing minor",
			version: "2",
			arch:    "x86_64",
			wantErr: true,
		},
		{
			name:    "garbage",
			version: "not-a-version",
			arch:    "x86_64",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ManylinuxTags(tt.version, tt.arch)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ManylinuxTags(%q) expected error, got %v", tt.version, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ManylinuxTags(%q) error = %v", tt.version, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ManylinuxTags(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

// TestManylinuxTagsCount verifies the full ladder length for a modern glibc.
func TestManylinuxTagsCount(t *testing.T) {
	got, err := ManylinuxTags("2.31", "x86_64")
	if err != nil {
		t.Fatalf("ManylinuxTags error = %v", err)
	}
	// 2.31 down to 2.5 inclusive
	if len(got) != 27 {
		t.Errorf("len = %d, want 27", len(got))
	}
	if got[0] != "manylinux_2_31_x86_64" {
		t.Errorf("first tag = %q, want manylinux_2_31_x86_64", got[0])
	}
	if got[len(got)-1] != "manylinux_2_5_x86_64" {
		t.Errorf("last tag = %q, want manylinux_2_5_x86_64", got[len(got)-1])
	}
}

// TestMusllinuxTags verifies the musl compatibility ladder, which runs all
// the way down to minor 0.
func TestMusllinuxTags(t *testing.T) {
	got, err := MusllinuxTags("1.2.4", "x86_64")
	if err != nil {
		t.Fatalf("MusllinuxTags error = %v", err)
	}
	want := []string{
		"musllinux_1_2_x86_64",
		"musllinux_1_1_x86_64",
		"musllinux_1_0_x86_64",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MusllinuxTags(1.2.4) = %v, want %v", got, want)
	}

	if _, err := MusllinuxTags("one.two", "x86_64"); err == nil {
		t.Error("MusllinuxTags with garbage version should error")
	}
}

// TestTagsFor verifies flavor routing for an already-detected C library.
func TestTagsFor(t *testing.T) {
	if _, err := HostArch(); err != nil {
		t.Skipf("no tag architecture for %s", runtime.GOARCH)
	}

	glibc := libc.Info{Flavor: libc.FlavorGlibc, Version: "2.31", Source: "ldd --version"}
	tags, err := TagsFor(glibc)
	if err != nil {
		t.Fatalf("TagsFor(glibc) error = %v", err)
	}
	if len(tags) == 0 || !strings.HasPrefix(tags[0], "manylinux_2_31_") {
		t.Errorf("TagsFor(glibc) first tag = %v", tags)
	}

	musl := libc.Info{Flavor: libc.FlavorMusl, Version: "1.2.4", Source: "ld-musl loader"}
	tags, err = TagsFor(musl)
	if err != nil {
		t.Fatalf("TagsFor(musl) error = %v", err)
	}
	if len(tags) != 3 || !strings.HasPrefix(tags[0], "musllinux_1_2_") {
		t.Errorf("TagsFor(musl) = %v", tags)
	}

	if _, err := TagsFor(libc.Info{Flavor: libc.FlavorUnknown}); err == nil {
		t.Error("TagsFor(unknown) should error")
	}
}

// TestParseMajorMinor verifies version component parsing, including the
// three-component versions musl reports.
func TestParseMajorMinor(t *testing.T) {
	tests := []struct {
		version string
		major   int
		minor   int
		wantErr bool
	}{
		{version: "2.31", major: 2, minor: 31},
		{version: "1.2.4", major: 1, minor: 2},
		{version: " 2.36 ", major: 2, minor: 36},
		{version: "14.5", major: 14, minor: 5},
		{version: "2", wantErr: true},
		{version: "a.b", wantErr: true},
		{version: "", wantErr: true},
	}

	for _, tt := range tests {
		major, minor, err := parseMajorMinor(tt.version)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseMajorMinor(%q) expected error", tt.version)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMajorMinor(%q) error = %v", tt.version, err)
			continue
		}
		if major != tt.major || minor != tt.minor {
			t.Errorf("parseMajorMinor(%q) = %d.%d, want %d.%d",
				tt.version, major, minor, tt.major, tt.minor)
		}
	}
}
