package version

import (
	"strings"
	"testing"
)

// TestString verifies the version line carries all build facts.
func TestString(t *testing.T) {
	s := String()

	if !strings.HasPrefix(s, "platformprobe ") {
		t.Errorf("String() = %q, want platformprobe prefix", s)
	}
	for _, want := range []string{"commit ", "built ", "go1"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

// TestShortInjected verifies an injected version wins over build info.
func TestShortInjected(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v9.9.9"
	if got := Short(); got != "v9.9.9" {
		t.Errorf("Short() = %q, want v9.9.9", got)
	}
}
