package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/module"
)

func TestPlanCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "plan", "--root", t.TempDir(), "--with-module", module.I18nModule)
	require.NoError(t, err)

	var report planReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Equal(t, "nuxt-vuetify", report.Module)
	require.Equal(t, []string{"vuetify.client", "vuetify.server"}, report.Plugins)
	require.True(t, report.Plan.I18n)
	require.Contains(t, report.Plan.Styles.CSS, "vuetify/styles")
}

func TestPlanCommandRejectsOldHost(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "plan", "--host-version", "3.12.0")
	require.Error(t, err)
	require.True(t, errors.Is(err, module.ErrIncompatibleHost))
	require.Contains(t, err.Error(), ">=4.0.0")
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantErr string
		wantOut string
	}{
		{
			name:    "valid",
			content: "icons: mdi-svg\ndefaultTheme: dark\n",
			wantOut: "Options are valid",
		},
		{
			name:    "ignored keys are listed",
			content: "icons: mdi\nfrobnicate: true\n",
			wantOut: "1 ignored: frobnicate",
		},
		{
			name:    "bad colour",
			content: "themes:\n  light:\n    colors:\n      primary: blue\n",
			wantErr: "themes.light.colors.primary",
		},
		{
			name:    "undefined default theme",
			content: "defaultTheme: sepia\n",
			wantErr: "sepia",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, "validate", "--config", writeOptions(t, tc.content))
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Contains(t, stdout, tc.wantOut)
		})
	}
}

func TestThemesCommand(t *testing.T) {
	t.Parallel()

	path := writeOptions(t, "defaultTheme: dark\nthemes:\n  dark:\n    colors:\n      primary: \"#000000\"\n  brand:\n    colors:\n      primary: \"#ff5722\"\n")

	stdout, _, err := execute(t, "themes", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "dark (dark) *")
	require.Contains(t, stdout, "#54B4D3")
	require.Contains(t, stdout, "#000000")
	require.Contains(t, stdout, "brand")
	require.Contains(t, stdout, "missing: background")

	css, _, err := execute(t, "themes", "--config", path, "--css")
	require.NoError(t, err)
	require.Contains(t, css, ".v-theme--brand")
	require.Contains(t, css, ":root")

	minified, _, err := execute(t, "themes", "--config", path, "--css", "--minify")
	require.NoError(t, err)
	require.Less(t, len(minified), len(css))
}
