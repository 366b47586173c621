package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	nverrors "github.com/alexisbeaulieu97/nuxtvuetify/pkg/errors"
)

func TestResolveIcons(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, nil, nil)
	cases := []struct {
		name string
		want IconConfig
	}{
		{name: "mdi", want: IconConfig{DefaultSet: "mdi"}},
		{name: "mdi-svg", want: IconConfig{DefaultSet: "mdi"}},
		{name: "fa", want: IconConfig{DefaultSet: "fa"}},
		{name: "fa4", want: IconConfig{}},
		{name: "md", want: IconConfig{}},
		{name: "custom", want: IconConfig{}},
		{name: "none", want: IconConfig{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res := r.Resolve(context.Background(), KindIcon, tc.name)
			require.True(t, res.Resolved())
			require.Equal(t, tc.want, res.Implementation)
		})
	}
}

func TestResolveDateAdapters(t *testing.T) {
	t.Parallel()

	loader := NewStaticLoader(
		Module{Package: "luxon", Version: "3.4.4"},
		Module{Package: "@date-io/luxon", Version: "3.0.0"},
		Module{Package: "dayjs", Version: "1.11.10"},
	)
	r := NewResolver(nil, loader, nil)

	cases := []struct {
		name   string
		token  string
		assert func(t *testing.T, res Resolution)
	}{
		{
			name:  "built-in adapter needs nothing",
			token: "vuetify",
			assert: func(t *testing.T, res Resolution) {
				require.True(t, res.Resolved())
				require.Equal(t, DateAdapter{Name: "vuetify"}, res.Implementation)
			},
		},
		{
			name:  "installed adapter resolves with its modules",
			token: "luxon",
			assert: func(t *testing.T, res Resolution) {
				require.True(t, res.Resolved())
				adapter := res.Implementation.(DateAdapter)
				require.Equal(t, "luxon", adapter.Name)
				require.Len(t, adapter.Modules, 2)
				require.Equal(t, "@date-io/luxon", adapter.Modules[1].Package)
			},
		},
		{
			name:  "half-installed adapter is missing",
			token: "dayjs",
			assert: func(t *testing.T, res Resolution) {
				require.False(t, res.Resolved())
				require.Equal(t, ReasonMissingDependency, res.Reason)
				require.Equal(t, []string{"dayjs", "@date-io/dayjs"}, res.Install)
				require.ErrorIs(t, res.Err, ErrNotInstalled)
			},
		},
		{
			name:  "moment absent names both packages",
			token: "moment",
			assert: func(t *testing.T, res Resolution) {
				require.Equal(t, ReasonMissingDependency, res.Reason)
				require.Equal(t, []string{"moment", "@date-io/moment"}, res.Install)
				var resErr *nverrors.ResolutionError
				require.ErrorAs(t, res.Err, &resErr)
				require.Equal(t, "moment", resErr.Name)
				require.Contains(t, res.Err.Error(), "@date-io/moment")
			},
		},
		{
			name:  "js-joda install hint",
			token: "js-joda",
			assert: func(t *testing.T, res Resolution) {
				require.Equal(t, []string{"@js-joda/core", "@date-io/js-joda"}, res.Install)
			},
		},
		{
			name:  "custom is user managed",
			token: "custom",
			assert: func(t *testing.T, res Resolution) {
				require.False(t, res.Resolved())
				require.Equal(t, ReasonUserManaged, res.Reason)
				require.Empty(t, res.Install)
			},
		},
		{
			name:  "unknown token",
			token: "temporal",
			assert: func(t *testing.T, res Resolution) {
				require.False(t, res.Resolved())
				require.Equal(t, ReasonUnknown, res.Reason)
				require.Equal(t, "unknown adapter", string(res.Reason))
			},
		},
		{
			name:  "empty token",
			token: "",
			assert: func(t *testing.T, res Resolution) {
				require.Equal(t, ReasonUnknown, res.Reason)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res := r.Resolve(context.Background(), KindDate, tc.token)
			require.Equal(t, KindDate, res.Kind)
			require.Equal(t, tc.token, res.Name)
			tc.assert(t, res)
		})
	}
}

func TestResolveBlueprints(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, nil, nil)
	for _, name := range config.BlueprintNames() {
		res := r.Resolve(context.Background(), KindBlueprint, name)
		require.True(t, res.Resolved(), name)
		preset, ok := res.Implementation.(Preset)
		require.True(t, ok)
		require.NotEmpty(t, preset.Defaults)
	}

	md3 := r.Resolve(context.Background(), KindBlueprint, "md3").Implementation.(Preset)
	require.Equal(t, "#6750a4", md3.Theme.Themes["light"].Colors["primary"])

	res := r.Resolve(context.Background(), KindBlueprint, "mso")
	require.False(t, res.Resolved())
	require.Equal(t, ReasonUnknown, res.Reason)
}

func TestResolveReturnsFreshImplementations(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, nil, nil)
	first := r.Resolve(context.Background(), KindBlueprint, "md2").Implementation.(Preset)
	first.Defaults["VBtn"] = "mutated"

	second := r.Resolve(context.Background(), KindBlueprint, "md2").Implementation.(Preset)
	require.Equal(t, map[string]any{"color": "primary"}, second.Defaults["VBtn"])
}

func TestResolveNeverPanics(t *testing.T) {
	t.Parallel()

	table := NewTable()
	require.NoError(t, table.Register(Capability{
		Kind:     KindDate,
		Name:     "broken",
		Requires: []string{"broken-lib"},
		Load: func(context.Context, Loader) (any, error) {
			panic("boom")
		},
	}))

	res := NewResolver(table, nil, nil).Resolve(context.Background(), KindDate, "broken")
	require.False(t, res.Resolved())
	require.Equal(t, ReasonMissingDependency, res.Reason)
	require.ErrorContains(t, res.Err, "boom")
}

type panickingCatalog struct{}

func (panickingCatalog) Lookup(context.Context, string) (Component, error) {
	panic("boom")
}

func TestResolveAliasesSurvivesCatalogPanic(t *testing.T) {
	t.Parallel()

	found, misses := NewResolver(nil, nil, panickingCatalog{}).ResolveAliases(context.Background(), map[string]string{
		"MyBtn":  "VBtn",
		"MyCard": "VCard",
	})
	require.Empty(t, found)
	require.Len(t, misses, 2)
	for _, miss := range misses {
		require.Equal(t, KindAlias, miss.Kind)
		require.Equal(t, ReasonNotFound, miss.Reason)
		require.ErrorIs(t, miss.Err, ErrComponentNotFound)
		require.ErrorContains(t, miss.Err, "boom")
	}
	require.Equal(t, "MyBtn", misses[0].Name)
}

func TestResolveAttemptsEachLoadOnce(t *testing.T) {
	t.Parallel()

	loader := &CountingLoader{Loader: NewStaticLoader()}
	r := NewResolver(nil, loader, nil)

	res := r.Resolve(context.Background(), KindDate, "date-fns")
	require.False(t, res.Resolved())
	require.Equal(t, 1, loader.Calls("date-fns"))
	require.Zero(t, loader.Calls("@date-io/date-fns"))
}

func TestResolveLoaderFailure(t *testing.T) {
	t.Parallel()

	loader := NewStaticLoader()
	loader.Fail("luxon", errors.New("corrupt manifest"))

	res := NewResolver(nil, loader, nil).Resolve(context.Background(), KindDate, "luxon")
	require.Equal(t, ReasonMissingDependency, res.Reason)
	require.ErrorContains(t, res.Err, "corrupt manifest")
}

func TestResolveAliases(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, nil, NewStaticCatalog("VCard", "VChip"))
	found, misses := r.ResolveAliases(context.Background(), map[string]string{
		"MyButton": "VBtn",
		"MyCard":   "VCard",
		"Tag":      "VChip",
	})

	require.Equal(t, map[string]Component{
		"MyCard": {Name: "VCard", Import: "vuetify/components/VCard"},
		"Tag":    {Name: "VChip", Import: "vuetify/components/VChip"},
	}, found)
	require.Len(t, misses, 1)
	require.Equal(t, KindAlias, misses[0].Kind)
	require.Equal(t, "MyButton", misses[0].Name)
	require.Equal(t, ReasonNotFound, misses[0].Reason)
	require.ErrorIs(t, misses[0].Err, ErrComponentNotFound)
	require.ErrorContains(t, misses[0].Err, "VBtn")
}

func TestResolveAliasesEmpty(t *testing.T) {
	t.Parallel()

	found, misses := NewResolver(nil, nil, nil).ResolveAliases(context.Background(), nil)
	require.Empty(t, found)
	require.Empty(t, misses)
}

func TestTableRegistration(t *testing.T) {
	t.Parallel()

	table := NewTable()
	icon := Capability{Kind: KindIcon, Name: "tabler", Load: static(func() any { return IconConfig{DefaultSet: "tabler"} })}

	require.NoError(t, table.Register(icon))
	require.ErrorIs(t, table.Register(icon), ErrDuplicateCapability)
	require.Error(t, table.Register(Capability{Kind: KindIcon, Name: "nothing"}))
	require.Error(t, table.Register(Capability{Kind: KindIcon}))

	got, ok := table.Lookup(KindIcon, "tabler")
	require.True(t, ok)
	require.Equal(t, "tabler", got.Name)
	require.Equal(t, []string{"tabler"}, table.Names(KindIcon))
	require.Empty(t, table.Names(KindDate))
}

func TestDefaultTableCoversRecognisedTokens(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	require.ElementsMatch(t, config.DateAdapters(), table.Names(KindDate))
	require.ElementsMatch(t, config.BlueprintNames(), table.Names(KindBlueprint))
	for _, set := range config.IconSets() {
		_, ok := table.Lookup(KindIcon, string(set))
		require.True(t, ok, set)
	}
}
