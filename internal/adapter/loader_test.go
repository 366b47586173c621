package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeModulesLoader(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, "moment", `{"name":"moment","version":"2.30.1"}`)
	writeManifest(t, root, "@date-io/moment", `{"name":"@date-io/moment","version":"3.0.0"}`)
	writeManifest(t, root, "broken", `{"name":`)
	writeManifest(t, root, "renamed", `{"name":"other"}`)

	loader := NodeModulesLoader{Root: root}
	cases := []struct {
		name    string
		pkg     string
		version string
		wantErr error
		errText string
	}{
		{name: "plain package", pkg: "moment", version: "2.30.1"},
		{name: "scoped package", pkg: "@date-io/moment", version: "3.0.0"},
		{name: "absent package", pkg: "luxon", wantErr: ErrNotInstalled},
		{name: "bad manifest", pkg: "broken", errText: "decode broken manifest"},
		{name: "manifest name mismatch", pkg: "renamed", errText: "manifest names"},
		{name: "path traversal", pkg: "../moment", errText: "invalid package name"},
		{name: "deep path", pkg: "@date-io/moment/lib", errText: "invalid package name"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := loader.Load(context.Background(), tc.pkg)
			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.errText != "":
				require.ErrorContains(t, err, tc.errText)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.pkg, m.Package)
				require.Equal(t, tc.version, m.Version)
				require.DirExists(t, m.Dir)
			}
		})
	}
}

func TestNodeModulesLoaderHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NodeModulesLoader{Root: t.TempDir()}.Load(ctx, "moment")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticLoader(t *testing.T) {
	t.Parallel()

	loader := NewStaticLoader(Module{Package: "dayjs"})
	_, err := loader.Load(context.Background(), "dayjs")
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "luxon")
	require.ErrorIs(t, err, ErrNotInstalled)

	loader.Add(Module{Package: "luxon", Version: "3.0.0"})
	m, err := loader.Load(context.Background(), "luxon")
	require.NoError(t, err)
	require.Equal(t, "3.0.0", m.Version)
}

func TestModuleCatalog(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "vuetify", "lib", "components", "VBtn"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "vuetify", "lib", "components", "index.mjs"), nil, 0o600))

	catalog := ModuleCatalog{Root: root}

	c, err := catalog.Lookup(context.Background(), "VBtn")
	require.NoError(t, err)
	require.Equal(t, Component{Name: "VBtn", Import: "vuetify/components/VBtn"}, c)

	for _, name := range []string{"VCard", "../VBtn", "index.mjs", "vbtn"} {
		_, err := catalog.Lookup(context.Background(), name)
		require.ErrorIs(t, err, ErrComponentNotFound, name)
	}
}

func TestStaticCatalogDefaultsToBuiltins(t *testing.T) {
	t.Parallel()

	catalog := NewStaticCatalog()
	for _, name := range []string{"VBtn", "VCard", "VDataTable"} {
		_, err := catalog.Lookup(context.Background(), name)
		require.NoError(t, err, name)
	}
	_, err := catalog.Lookup(context.Background(), "VMyThing")
	require.ErrorIs(t, err, ErrComponentNotFound)
}

func writeManifest(t *testing.T, root, pkg, contents string) {
	t.Helper()

	dir := filepath.Join(root, "node_modules", filepath.FromSlash(pkg))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(contents), 0o600))
}
