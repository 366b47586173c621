package module

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/adapter"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
)

func TestPlanDefaults(t *testing.T) {
	t.Parallel()

	plan := Plan(config.Defaults(), PlanOptions{Components: adapter.BuiltinComponents()})

	require.Equal(t, config.StylesCSS, plan.Styles.Mode)
	require.Equal(t, []string{"vuetify/styles", "@mdi/font/css/materialdesignicons.css"}, plan.Styles.CSS)
	require.Equal(t, config.DefaultAssetURLs(), plan.TransformAssetURLs)
	require.True(t, plan.TreeShaking.AutoImport)
	require.Len(t, plan.Imports, len(config.Composables()))
	require.Equal(t, Import{Name: "useDisplay", As: "useDisplay", From: "vuetify"}, plan.Imports[2])
	require.Empty(t, plan.Head.Links)
	require.Len(t, plan.Head.Styles, 1)
	require.Equal(t, ThemeStyleID, plan.Head.Styles[0].ID)
	require.Contains(t, plan.Head.Styles[0].CSS, ".v-theme--dark")
	require.False(t, plan.I18n)
}

func TestPlanVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		user   config.PartialOptions
		assert func(t *testing.T, plan BuildPlan)
	}{
		{
			name: "prefixed composables",
			user: config.PartialOptions{PrefixComposables: ptr(config.DefaultComposablePrefix)},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Contains(t, plan.Imports, Import{Name: "useDisplay", As: "useVDisplay", From: "vuetify"})
				require.Contains(t, plan.Imports, Import{Name: "useTheme", As: "useVTheme", From: "vuetify"})
			},
		},
		{
			name: "composables off",
			user: config.PartialOptions{ImportComposables: ptr(false)},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Empty(t, plan.Imports)
			},
		},
		{
			name: "sass with custom variables",
			user: config.PartialOptions{Styles: ptr(config.StylesSass), CustomVariables: ptr("assets/settings.scss")},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Equal(t, "vuetify/styles/main.sass", plan.Styles.CSS[0])
				require.Equal(t, "assets/settings.scss", plan.Styles.ConfigFile)
			},
		},
		{
			name: "styles none adds no css",
			user: config.PartialOptions{Styles: ptr(config.StylesNone)},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Empty(t, plan.Styles.CSS)
			},
		},
		{
			name: "icon cdn with font preload",
			user: config.PartialOptions{IconsCDN: ptr(true), Preload: &config.PartialPreload{Fonts: ptr(true)}},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Equal(t, []string{"vuetify/styles"}, plan.Styles.CSS)
				require.Len(t, plan.Head.Links, 2)
				require.Equal(t, "stylesheet", plan.Head.Links[0].Rel)
				require.Equal(t, HeadLink{Rel: "preload", Href: plan.Head.Links[0].Href, As: "style"}, plan.Head.Links[1])
			},
		},
		{
			name: "svg icons need no stylesheet",
			user: config.PartialOptions{Icons: ptr(config.IconMDISVG)},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Equal(t, []string{"vuetify/styles"}, plan.Styles.CSS)
			},
		},
		{
			name: "custom asset url mapping",
			user: config.PartialOptions{TransformAssetURLs: &config.AssetURLs{Enabled: true, Mapping: map[string][]string{"v-img": {"src"}}}},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Equal(t, map[string][]string{"v-img": {"src"}}, plan.TransformAssetURLs)
			},
		},
		{
			name: "asset urls off",
			user: config.PartialOptions{TransformAssetURLs: &config.AssetURLs{}},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Nil(t, plan.TransformAssetURLs)
			},
		},
		{
			name: "tree shaking ignore globs expand",
			user: config.PartialOptions{TreeShaking: &config.PartialTreeShaking{
				IgnoreComponents: []string{"VData*", "VCalendar", "VNope*"},
				IgnoreDirectives: []string{"Ripple"},
			}},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Equal(t, []string{"VCalendar", "VDataIterator", "VDataTable", "VNope*"}, plan.TreeShaking.IgnoreComponents)
				require.Equal(t, []string{"Ripple"}, plan.TreeShaking.IgnoreDirectives)
			},
		},
		{
			name: "tree shaking off",
			user: config.PartialOptions{TreeShaking: &config.PartialTreeShaking{Enabled: ptr(false), LabComponents: ptr(true)}},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Equal(t, TreeShakingPlan{}, plan.TreeShaking)
			},
		},
		{
			name: "bad theme colour skips critical css",
			user: config.PartialOptions{
				Themes: map[string]config.ThemeDefinition{"light": {Colors: map[string]string{"primary": "blue"}}},
			},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Empty(t, plan.Head.Styles)
			},
		},
		{
			name: "critical css off",
			user: config.PartialOptions{Preload: &config.PartialPreload{CriticalCSS: ptr(false)}},
			assert: func(t *testing.T, plan BuildPlan) {
				require.Empty(t, plan.Head.Styles)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			plan := Plan(config.MergeDefaults(tc.user), PlanOptions{Components: adapter.BuiltinComponents()})
			tc.assert(t, plan)
		})
	}
}

func TestPrefixComposable(t *testing.T) {
	t.Parallel()

	require.Equal(t, "useVDate", prefixComposable("useDate", "V"))
	require.Equal(t, "useDate", prefixComposable("useDate", ""))
	require.Equal(t, "createThing", prefixComposable("createThing", "V"))
}
