package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Render serializes the report in the given format.
func (r *Report) Render(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return r.renderText(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render report as json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("render report as yaml: %w", err)
		}
		return data, nil
	case FormatMarkdown:
		return r.renderMarkdown(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Report) renderText() []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Host:      %s/%s\n", r.OS, r.Arch)
	if r.Kernel != "" {
		fmt.Fprintf(&sb, "Kernel:    %s\n", r.Kernel)
	}
	if r.OSRelease != nil {
		fmt.Fprintf(&sb, "OS:        %s\n", r.OSRelease)
	}
	if r.Libc != nil {
		fmt.Fprintf(&sb, "C library: %s %s (via %s)\n", r.Libc.Flavor, r.Libc.Version, r.Libc.Source)
	}
	fmt.Fprintf(&sb, "Run id:    %s\n", r.ID)

	fmt.Fprintf(&sb, "\nPlatform tags (%d, best first):\n", len(r.Tags))
	for _, tag := range r.Tags {
		fmt.Fprintf(&sb, "  %s\n", tag)
	}

	return []byte(sb.String())
}

func (r *Report) renderMarkdown() []byte {
	var sb strings.Builder

	sb.WriteString("# Platform report\n\n")
	fmt.Fprintf(&sb, "- **Host:** `%s/%s`\n", r.OS, r.Arch)
	if r.Kernel != "" {
		fmt.Fprintf(&sb, "- **Kernel:** `%s`\n", r.Kernel)
	}
	if r.OSRelease != nil {
		fmt.Fprintf(&sb, "- **OS:** %s\n", r.OSRelease)
	}
	if r.Libc != nil {
		fmt.Fprintf(&sb, "- **C library:** %s %s (via %s)\n", r.Libc.Flavor, r.Libc.Version, r.Libc.Source)
	}
	fmt.Fprintf(&sb, "- **Run id:** `%s`\n", r.ID)
	fmt.Fprintf(&sb, "- **Generated:** %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	sb.WriteString("\n## Platform tags\n\n")
	if len(r.Tags) == 0 {
		sb.WriteString("_none_\n")
	}
	for _, tag := range r.Tags {
		fmt.Fprintf(&sb, "1. `%s`\n", tag)
	}

	return []byte(sb.String())
}
