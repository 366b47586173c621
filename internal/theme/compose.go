// Package theme composes runtime palettes and renders them as CSS.
package theme

import "github.com/alexisbeaulieu97/nuxtvuetify/internal/config"

// Compose merges overrides over base by theme name and colour token. A theme
// that only exists in overrides is taken as given: no dark flag is invented.
// Neither input is modified.
func Compose(base, overrides map[string]config.ThemeDefinition) map[string]config.ThemeDefinition {
	out := make(map[string]config.ThemeDefinition, len(base)+len(overrides))
	for name, def := range base {
		out[name] = config.CloneTheme(def)
	}
	for _, name := range config.SortedKeys(overrides) {
		override := overrides[name]
		current, ok := out[name]
		if !ok {
			out[name] = config.CloneTheme(override)
			continue
		}
		out[name] = config.MergeTheme(current, override)
	}
	return out
}

// ComposeBuiltin composes overrides over the built-in light and dark palettes.
func ComposeBuiltin(overrides map[string]config.ThemeDefinition) map[string]config.ThemeDefinition {
	return Compose(config.BuiltinThemes(), overrides)
}

// Missing returns the required colour tokens def does not define.
func Missing(def config.ThemeDefinition) []string {
	var missing []string
	for _, token := range config.RequiredColorTokens {
		if _, ok := def.Colors[token]; !ok {
			missing = append(missing, token)
		}
	}
	return missing
}
