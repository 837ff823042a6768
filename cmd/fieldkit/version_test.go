package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "0.4.0"
	commit = "9f1c2ab"
	date = "2025-11-02"

	output, err := execute("version")
	require.NoError(t, err)
	require.Contains(t, output, "Fieldkit 0.4.0")
	require.Contains(t, output, "9f1c2ab")
	require.Contains(t, output, "2025-11-02")
}
