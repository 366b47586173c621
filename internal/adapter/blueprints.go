package adapter

import "github.com/alexisbeaulieu97/nuxtvuetify/internal/config"

// Preset is a blueprint: default component props, icons and theme colours.
type Preset struct {
	Defaults map[string]any `json:"defaults,omitempty"`
	Icons    *IconConfig    `json:"icons,omitempty"`
	Theme    *PresetTheme   `json:"theme,omitempty"`
}

// PresetTheme carries the palettes a blueprint contributes.
type PresetTheme struct {
	Themes map[string]config.ThemeDefinition `json:"themes"`
}

func md1() Preset {
	return Preset{
		Defaults: map[string]any{
			"global":        map[string]any{"rounded": "sm"},
			"VAvatar":       map[string]any{"rounded": "circle"},
			"VAutocomplete": map[string]any{"variant": "underlined"},
			"VBanner":       map[string]any{"color": "primary"},
			"VBtn":          map[string]any{"color": "primary", "rounded": 0},
			"VCheckbox":     map[string]any{"color": "secondary"},
			"VCombobox":     map[string]any{"variant": "underlined"},
			"VSelect":       map[string]any{"variant": "underlined"},
			"VSlider":       map[string]any{"color": "primary"},
			"VTabs":         map[string]any{"color": "primary"},
			"VTextarea":     map[string]any{"variant": "underlined"},
			"VTextField":    map[string]any{"variant": "underlined"},
			"VToolbar":      map[string]any{"VBtn": map[string]any{"color": nil}},
		},
		Icons: &IconConfig{DefaultSet: "mdi"},
		Theme: &PresetTheme{Themes: map[string]config.ThemeDefinition{
			config.ThemeLight: {Colors: map[string]string{
				"primary":             "#3F51B5",
				"primary-darken-1":    "#303F9F",
				"primary-lighten-1":   "#C5CAE9",
				"secondary":           "#FF4081",
				"secondary-darken-1":  "#F50057",
				"secondary-lighten-1": "#FF80AB",
				"accent":              "#009688",
			}},
		}},
	}
}

func md2() Preset {
	return Preset{
		Defaults: map[string]any{
			"global":        map[string]any{"rounded": "md"},
			"VAppBar":       map[string]any{"flat": true},
			"VAutocomplete": map[string]any{"variant": "filled"},
			"VBanner":       map[string]any{"color": "primary"},
			"VBtn":          map[string]any{"color": "primary"},
			"VCheckbox":     map[string]any{"color": "secondary"},
			"VRadioGroup":   map[string]any{"color": "secondary"},
			"VSelect":       map[string]any{"variant": "filled"},
			"VSlider":       map[string]any{"color": "primary"},
			"VTabs":         map[string]any{"color": "primary"},
			"VTextarea":     map[string]any{"variant": "filled"},
			"VTextField":    map[string]any{"variant": "filled"},
		},
		Icons: &IconConfig{DefaultSet: "mdi"},
		Theme: &PresetTheme{Themes: map[string]config.ThemeDefinition{
			config.ThemeLight: {Colors: map[string]string{
				"primary":            "#6200EE",
				"primary-darken-1":   "#3700B3",
				"secondary":          "#03DAC6",
				"secondary-darken-1": "#018786",
				"error":              "#B00020",
			}},
		}},
	}
}

func md3() Preset {
	return Preset{
		Defaults: map[string]any{
			"VAppBar":       map[string]any{"flat": true},
			"VAutocomplete": map[string]any{"variant": "filled"},
			"VBanner":       map[string]any{"color": "primary"},
			"VBottomSheet":  map[string]any{"contentClass": "rounded-t-xl overflow-hidden"},
			"VBtn":          map[string]any{"color": "primary", "rounded": "xl"},
			"VBtnGroup":     map[string]any{"rounded": "xl", "VBtn": map[string]any{"rounded": nil}},
			"VCard":         map[string]any{"rounded": "lg"},
			"VCheckbox":     map[string]any{"color": "secondary", "inset": true},
			"VChip":         map[string]any{"rounded": "sm"},
			"VCombobox":     map[string]any{"variant": "filled"},
			"VFileInput":    map[string]any{"variant": "filled"},
			"VNumberInput":  map[string]any{"variant": "filled"},
			"VSelect":       map[string]any{"variant": "filled"},
			"VSlider":       map[string]any{"color": "primary"},
			"VTabs":         map[string]any{"color": "primary"},
			"VTextarea":     map[string]any{"variant": "filled"},
			"VTextField":    map[string]any{"variant": "filled"},
			"VToolbar":      map[string]any{"VBtn": map[string]any{"color": nil}},
		},
		Icons: &IconConfig{DefaultSet: "mdi"},
		Theme: &PresetTheme{Themes: map[string]config.ThemeDefinition{
			config.ThemeLight: {Colors: map[string]string{
				"primary":   "#6750a4",
				"secondary": "#b4b0bb",
				"tertiary":  "#7d5260",
				"error":     "#b3261e",
				"surface":   "#fffbfe",
			}},
			config.ThemeDark: {Colors: map[string]string{
				"primary":   "#D0BCFF",
				"secondary": "#CCC2DC",
				"tertiary":  "#EFB8C8",
				"error":     "#F2B8B5",
				"surface":   "#1C1B1F",
			}},
		}},
	}
}
