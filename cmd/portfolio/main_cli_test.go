package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestContentValidateEmbedded(t *testing.T) {
	out, _, err := runCLI(t, "content", "validate")
	require.NoError(t, err)
	require.Contains(t, out, "content ok:")
	require.Contains(t, out, "ui=4")
	require.Contains(t, out, "sunshine=6")
}

func TestContentValidateReportsProblems(t *testing.T) {
	_, _, err := runCLI(t, "content", "validate", "--dir", t.TempDir())
	require.Error(t, err)
}

func TestContentListAppliesAllViewLimits(t *testing.T) {
	out, _, err := runCLI(t, "content", "list")
	require.NoError(t, err)
	require.Contains(t, out, "ui (2 of 4)")
	require.Contains(t, out, "sunshine (2 of 6)")
	require.Contains(t, out, "architectural (4 of 4)")

	out, _, err = runCLI(t, "content", "list", "--category", "brand")
	require.NoError(t, err)
	require.Contains(t, out, "sunshine (6 of 6)")
	require.NotContains(t, out, "ui (")
}
