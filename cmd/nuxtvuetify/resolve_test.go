package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
)

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "resolve", "--root", t.TempDir())
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.NotContains(t, report, "parityDiff")

	payloads := report["payloads"].(map[string]any)
	require.Contains(t, payloads, "client")
	require.Contains(t, payloads, "server")

	client := payloads["client"].(map[string]any)
	require.Equal(t, map[string]any{"defaultSet": "mdi"}, client["icons"])
	require.Equal(t, "system", client["theme"].(map[string]any)["defaultTheme"])
}

func TestResolveMissingDateAdapter(t *testing.T) {
	t.Parallel()

	path := writeOptions(t, "date:\n  adapter: moment\n")
	stdout, stderr, err := execute(t, "resolve", "--config", path, "--root", t.TempDir(), "--context", "client")
	require.NoError(t, err)

	var report resolveReportJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Payloads, 1)
	require.NotContains(t, report.Payloads["client"], "date")

	require.Contains(t, stderr, "moment")
	require.Contains(t, stderr, "@date-io/moment")
}

func TestResolveWritesRuntimeConfig(t *testing.T) {
	t.Parallel()

	path := writeOptions(t, "icons: fa\nssr: false\n")
	out := filepath.Join(t.TempDir(), "runtime.json")

	stdout, _, err := execute(t, "resolve", "--config", path, "--root", t.TempDir(), "--out", out)
	require.NoError(t, err)

	var report resolveReportJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Contains(t, report.Payloads, "client")
	require.NotContains(t, report.Payloads, "server")

	rc, err := config.ReadRuntimeConfig(out)
	require.NoError(t, err)
	require.Equal(t, config.IconFA, rc.Icons)
	require.False(t, rc.SSR)
}

func TestResolveDisabled(t *testing.T) {
	t.Parallel()

	path := writeOptions(t, "enabled: false\n")
	stdout, _, err := execute(t, "resolve", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Module disabled")
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown context", args: []string{"resolve", "--context", "edge"}, want: "unknown context"},
		{name: "missing config", args: []string{"resolve", "--config", "/does/not/exist.yaml"}, want: "config file does not exist"},
		{name: "config is a directory", args: []string{"resolve", "--config", "."}, want: "is a directory"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
			require.Contains(t, err.Error(), "Suggestion:")
		})
	}
}

type resolveReportJSON struct {
	Payloads map[string]map[string]any `json:"payloads"`
}
