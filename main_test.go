package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("0,0\n1,5\n2,1\n3,6\n4,3\n5,7\n6,4\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"detect", in, "--trough-max", "2"})
	require.NoError(t, cmd.Execute())

	want := "peakX,peakY,troughX,troughY\n" +
		"1,5,2,1\n" +
		"3,6,,\n" +
		"5,7,,\n"
	assert.Equal(t, want, out.String())
}

func TestDetectCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("1,2\n2,5\n3,1\n4,6\n5,0\n"), 0o600))
	outPath := filepath.Join(dir, "extrema.json")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"detect", in, "-o", outPath, "--peak-min", "5.5"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version"`)
}

func TestDetectCommandBadThreshold(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("1,2\n2,5\n3,1\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"detect", in, "--peak-min", "high"})
	assert.Error(t, cmd.Execute())
}
