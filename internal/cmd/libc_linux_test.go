//go:build linux

package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiller/platformprobe/internal/libc"
)

func TestNewLibcCommand(t *testing.T) {
	cmd := NewLibcCommand()

	assert.Equal(t, "libc", cmd.Use)
	assert.NotEmpty(t, cmd.Long)
	for _, flag := range []string{"config", "log-level", "no-cache", "json", "quiet"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %s should exist", flag)
	}
}

// TestLibcQuietMatchesRoot verifies `libc --quiet` and the bare invocation
// agree on the version string.
func TestLibcQuietMatchesRoot(t *testing.T) {
	root, err := executeCommand(t, NewRootCommand())
	require.NoError(t, err)

	quiet, err := executeCommand(t, NewRootCommand(), "libc", "--quiet", "--no-cache")
	require.NoError(t, err)

	assert.Equal(t, root, quiet)
}

// TestLibcJSON verifies the JSON detection record.
func TestLibcJSON(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "libc", "--json", "--no-cache")
	require.NoError(t, err)

	var info libc.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))

	assert.Contains(t, []libc.Flavor{libc.FlavorGlibc, libc.FlavorMusl}, info.Flavor)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Source)
}

// TestLibcHumanOutput verifies the default rendering names the flavor and
// mechanism.
func TestLibcHumanOutput(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "libc", "--no-cache")
	require.NoError(t, err)

	assert.True(t,
		strings.HasPrefix(out, "glibc ") || strings.HasPrefix(out, "musl "),
		"output should lead with the flavor: %q", out)
	assert.Contains(t, out, "(via ")
}
