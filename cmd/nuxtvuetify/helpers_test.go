package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeOptions(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vuetify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
