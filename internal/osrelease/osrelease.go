// Package osrelease reads the distribution identification fields from
// /etc/os-release (falling back to /usr/lib/os-release), as described in
// os-release(5).
package osrelease

import (
	"fmt"
	"os"
	"strings"
)

// Default search order per os-release(5).
var searchPaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Info holds the subset of os-release fields the report cares about.
type Info struct {
	// Name is the distribution name, e.g. "Ubuntu".
	Name string `json:"name" yaml:"name"`

	// Version is the distribution version, e.g. "22.04.4 LTS (Jammy Jellyfish)".
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// VersionID is the machine-parsable version, e.g. "22.04".
	VersionID string `json:"version_id,omitempty" yaml:"version_id,omitempty"`

	// ID is the lowercase distribution identifier, e.g. "ubuntu".
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// PrettyName is the single human-readable line, e.g.
	// "Ubuntu 22.04.4 LTS".
	PrettyName string `json:"pretty_name,omitempty" yaml:"pretty_name,omitempty"`
}

// String renders the most readable identification available.
func (i Info) String() string {
	if i.PrettyName != "" {
		return i.PrettyName
	}
	if i.Name != "" && i.VersionID != "" {
		return fmt.Sprintf("%s %s", i.Name, i.VersionID)
	}
	return i.Name
}

// Read loads distribution information from the standard os-release
// locations. A host without an os-release file (non-Linux, or a bare
// container image) yields a zero Info and no error.
func Read() (Info, error) {
	for _, path := range searchPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Info{}, fmt.Errorf("read %s: %w", path, err)
		}
		return parse(string(data)), nil
	}
	return Info{}, nil
}

// parse extracts the fields of interest from os-release content. Unknown
// keys, comments, and blank lines are skipped; values may be quoted.
func parse(content string) Info {
	var info Info
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = unquote(value)

		switch key {
		case "NAME":
			info.Name = value
		case "VERSION":
			info.Version = value
		case "VERSION_ID":
			info.VersionID = value
		case "ID":
			info.ID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}
	return info
}

// unquote strips one level of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
