package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "platformprobe "), "output = %q", out)
	assert.Contains(t, out, "commit ")
}

func TestVersionShort(t *testing.T) {
	out, err := executeCommand(t, NewRootCommand(), "version", "--short")
	require.NoError(t, err)

	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.NotContains(t, out, "commit ")
}
