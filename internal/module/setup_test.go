package module

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/assembler"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/runtime"
)

func ptr[T any](v T) *T { return &v }

func TestDescribe(t *testing.T) {
	t.Parallel()

	desc := Describe()
	require.Equal(t, "nuxt-vuetify", desc.Name)
	require.Equal(t, "vuetify", desc.ConfigKey)
	require.Equal(t, ">=4.0.0", desc.Compatibility.String())
	require.Equal(t, config.Defaults(), desc.Defaults)
}

func TestSetupRegistersEverything(t *testing.T) {
	t.Parallel()

	host := &RecordingHost{HostVersion: "4.1.2", Modules: []string{I18nModule}}
	res, err := Setup(context.Background(), host, config.PartialOptions{Icons: ptr(config.IconFA)}, SetupOptions{Logger: logger.Nop()})
	require.NoError(t, err)
	require.False(t, res.Disabled)

	rc, ok := host.RuntimeConfig(config.ModuleKey)
	require.True(t, ok)
	require.Equal(t, res.Runtime, rc)
	require.Equal(t, config.IconFA, rc.Icons)

	require.Len(t, host.Plans(), 1)
	require.True(t, host.Plans()[0].I18n)

	plugins := host.Plugins()
	require.Len(t, plugins, 2)
	require.Equal(t, assembler.Client, plugins[0].Context())
	require.Equal(t, assembler.Server, plugins[1].Context())

	app := runtime.NewMemoryApp()
	instance, err := plugins[0].Setup(context.Background(), app, rc)
	require.NoError(t, err)
	require.Equal(t, "fa", instance.(assembler.Payload).Icons.DefaultSet)
}

func TestSetupLayersMergeInOrder(t *testing.T) {
	t.Parallel()

	host := &RecordingHost{
		HostVersion: "4.0.0",
		Layers: []config.PartialOptions{
			{Aliases: map[string]string{"A": "VBtn"}, DefaultTheme: ptr("dark")},
			{Aliases: map[string]string{"B": "VCard"}, DefaultTheme: ptr("light")},
		},
	}
	res, err := Setup(context.Background(), host, config.PartialOptions{Aliases: map[string]string{"A": "VChip"}}, SetupOptions{Logger: logger.Nop()})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"A": "VChip", "B": "VCard"}, res.Options.Aliases)
	require.Equal(t, "light", res.Options.DefaultTheme)
}

func TestSetupWithoutSSRSkipsServerPlugin(t *testing.T) {
	t.Parallel()

	host := &RecordingHost{HostVersion: "4.0.0"}
	_, err := Setup(context.Background(), host, config.PartialOptions{SSR: ptr(false)}, SetupOptions{Logger: logger.Nop()})
	require.NoError(t, err)
	require.Len(t, host.Plugins(), 1)
	require.Equal(t, assembler.Client, host.Plugins()[0].Context())
}

func TestSetupDisabled(t *testing.T) {
	t.Parallel()

	host := &RecordingHost{HostVersion: "4.0.0"}
	res, err := Setup(context.Background(), host, config.PartialOptions{Enabled: ptr(false)}, SetupOptions{Logger: logger.Nop()})
	require.NoError(t, err)
	require.True(t, res.Disabled)
	require.Empty(t, host.Plugins())
	require.Empty(t, host.Plans())
	_, ok := host.RuntimeConfig(config.ModuleKey)
	require.False(t, ok)
}

func TestSetupRejectsIncompatibleHost(t *testing.T) {
	t.Parallel()

	for _, version := range []string{"3.17.0", "", "nightly"} {
		_, err := Setup(context.Background(), &RecordingHost{HostVersion: version}, config.PartialOptions{}, SetupOptions{Logger: logger.Nop()})
		require.ErrorIs(t, err, ErrIncompatibleHost, version)
	}
}

func TestSetupDefaultResolverReadsNodeModules(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, pkg := range []string{"dayjs", "@date-io/dayjs"} {
		dir := filepath.Join(root, "node_modules", filepath.FromSlash(pkg))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"`+pkg+`","version":"1.0.0"}`), 0o600))
	}

	host := &RecordingHost{HostVersion: "4.0.0", Root: root}
	res, err := Setup(context.Background(), host, config.PartialOptions{
		Date: &config.PartialDate{Adapter: ptr(config.DateDayjs)},
	}, SetupOptions{Logger: logger.Nop()})
	require.NoError(t, err)

	instance, err := res.Plugins[0].Setup(context.Background(), runtime.NewMemoryApp(), res.Runtime)
	require.NoError(t, err)
	payload := instance.(assembler.Payload)
	require.NotNil(t, payload.Date)
	require.Equal(t, "dayjs", payload.Date.Adapter.Name)
	require.Len(t, payload.Date.Adapter.Modules, 2)
}
