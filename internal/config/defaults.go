package config

import "sort"

const (
	ModuleName = "nuxt-vuetify"
	ModuleKey  = "vuetify"

	PersistenceKey    = "nuxt-" + ModuleKey + "-theme"
	PersistenceMaxAge = 60 * 60 * 24 * 365

	LoggerTag = "nuxt:" + ModuleKey
)

// Theme modes accepted by DefaultTheme besides user theme names.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Icon sets.
const (
	IconMDI    IconSet = "mdi"
	IconMDISVG IconSet = "mdi-svg"
	IconFA4    IconSet = "fa4"
	IconFA     IconSet = "fa"
	IconFASVG  IconSet = "fa-svg"
	IconMD     IconSet = "md"
	IconCustom IconSet = "custom"
)

// Date adapters.
const (
	DateVuetify = "vuetify"
	DateFns     = "date-fns"
	DateDayjs   = "dayjs"
	DateLuxon   = "luxon"
	DateMoment  = "moment"
	DateJsJoda  = "js-joda"
	DateCustom  = "custom"
)

// Built-in blueprints.
const (
	BlueprintMD1 = "md1"
	BlueprintMD2 = "md2"
	BlueprintMD3 = "md3"
)

// RequiredColorTokens are defined by every built-in theme.
var RequiredColorTokens = []string{
	"background", "surface", "primary", "secondary", "accent",
	"error", "info", "success", "warning",
}

// IconSets lists the recognised icon set tokens.
func IconSets() []IconSet {
	return []IconSet{IconMDI, IconMDISVG, IconFA4, IconFA, IconFASVG, IconMD, IconCustom}
}

// DateAdapters lists the recognised date adapter tokens.
func DateAdapters() []string {
	return []string{DateVuetify, DateFns, DateDayjs, DateLuxon, DateMoment, DateJsJoda, DateCustom}
}

// BlueprintNames lists the built-in blueprint tokens.
func BlueprintNames() []string {
	return []string{BlueprintMD1, BlueprintMD2, BlueprintMD3}
}

// Defaults returns a fresh copy of the module defaults.
func Defaults() Options {
	return Options{
		Enabled:      true,
		DefaultTheme: ThemeSystem,
		Icons:        IconMDI,
		Blueprint:    Blueprint{Name: BlueprintMD3},
		Aliases:      map[string]string{},
		Defaults:     map[string]any{},
		Locale: Locale{
			Locale:   "en",
			Fallback: "en",
		},
		Date: DateOptions{
			Adapter: DateVuetify,
		},
		SSR: true,
		TreeShaking: TreeShaking{
			Enabled: true,
		},
		Styles:             StylesCSS,
		TransformAssetURLs: AssetURLs{Enabled: true},
		ImportComposables:  true,
		Persistence: Persistence{
			Enabled: true,
			Storage: "cookie",
			Key:     PersistenceKey,
			Cookie: CookieOptions{
				MaxAge:   PersistenceMaxAge,
				Path:     "/",
				SameSite: "lax",
			},
		},
		Preload: Preload{
			Fonts:       false,
			CriticalCSS: true,
		},
		Logger: LoggerOptions{
			Level: "info",
			Tag:   LoggerTag,
		},
	}
}

// BuiltinThemes returns fresh copies of the light and dark palettes user themes merge over.
func BuiltinThemes() map[string]ThemeDefinition {
	light, dark := false, true
	return map[string]ThemeDefinition{
		ThemeLight: {
			Dark: &light,
			Colors: map[string]string{
				"background": "#FFFFFF",
				"surface":    "#FFFFFF",
				"primary":    "#1867C0",
				"secondary":  "#5CBBF6",
				"accent":     "#4CAF50",
				"error":      "#FF5252",
				"info":       "#2196F3",
				"success":    "#4CAF50",
				"warning":    "#FB8C00",
			},
		},
		ThemeDark: {
			Dark: &dark,
			Colors: map[string]string{
				"background": "#121212",
				"surface":    "#212121",
				"primary":    "#2196F3",
				"secondary":  "#54B4D3",
				"accent":     "#FF4081",
				"error":      "#FF5252",
				"info":       "#2196F3",
				"success":    "#4CAF50",
				"warning":    "#FB8C00",
			},
		},
	}
}

// DefaultAssetURLs is the transformAssetUrls mapping applied when the option is `true`.
func DefaultAssetURLs() map[string][]string {
	return map[string][]string{
		"v-img":       {"src", "lazy-src"},
		"v-card":      {"image"},
		"v-card-item": {"prependAvatar", "appendAvatar"},
		"v-avatar":    {"image"},
		"v-parallax":  {"src"},
		"v-toolbar":   {"image"},
		"v-app-bar":   {"image"},
		"v-banner":    {"avatar"},
		"v-list-item": {"prependAvatar", "appendAvatar"},
		"v-chip":      {"prependAvatar", "appendAvatar"},
	}
}

// Composables lists the UI library composables offered for auto-import.
func Composables() []string {
	return []string{
		"useDate",
		"useDefaults",
		"useDisplay",
		"useLayout",
		"useLocale",
		"useRtl",
		"useTheme",
		"useGoTo",
		"useHotkey",
		"useRules",
		"useMask",
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
