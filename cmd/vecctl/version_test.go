package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_UsesRootVersion(t *testing.T) {
	withGlobalFlags(t, false, false)
	prev := rootCmd.Version
	rootCmd.Version = "9.9.9-test"
	t.Cleanup(func() { rootCmd.Version = prev })

	out, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assert.Equal(t, "vecctl 9.9.9-test (commit none, built unknown)\n", out)
}

func TestVersionCommand_JSON(t *testing.T) {
	withGlobalFlags(t, true, false)

	out, err := captureOutput(t, runVersion)
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, rootCmd.Version, info.Version)
	assert.Equal(t, version, info.Version)
}
