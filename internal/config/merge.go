package config

// MergeDefaults layers user input over a fresh copy of the module defaults.
func MergeDefaults(user PartialOptions) Options {
	return Merge(Defaults(), user)
}

// Merge layers user over base and returns a new Options. Mappings merge key by
// key, everything else (arrays included) is replaced by the user value. Neither
// input is modified and the result shares no maps or slices with them.
func Merge(base Options, user PartialOptions) Options {
	out := Clone(base)

	if user.Enabled != nil {
		out.Enabled = *user.Enabled
	}
	if user.DefaultTheme != nil {
		out.DefaultTheme = *user.DefaultTheme
	}
	out.Themes = MergeThemes(out.Themes, user.Themes)
	if user.Icons != nil {
		out.Icons = *user.Icons
	}
	if user.IconsCDN != nil {
		out.IconsCDN = *user.IconsCDN
	}
	if user.Blueprint != nil {
		out.Blueprint = mergeBlueprint(out.Blueprint, *user.Blueprint)
	}
	out.Aliases = mergeStringMap(out.Aliases, user.Aliases)
	out.Defaults = MergeTree(out.Defaults, user.Defaults)
	out.Display = mergeDisplay(out.Display, user.Display)
	out.GoTo = mergeGoTo(out.GoTo, user.GoTo)
	if user.Locale != nil {
		out.Locale = mergeLocale(out.Locale, *user.Locale)
	}
	if user.Date != nil {
		out.Date = mergeDate(out.Date, *user.Date)
	}
	if user.SSR != nil {
		out.SSR = *user.SSR
	}
	if user.TreeShaking != nil {
		out.TreeShaking = mergeTreeShaking(out.TreeShaking, *user.TreeShaking)
	}
	if user.Styles != nil {
		out.Styles = *user.Styles
	}
	if user.CustomVariables != nil {
		out.CustomVariables = *user.CustomVariables
	}
	if user.TransformAssetURLs != nil {
		out.TransformAssetURLs = AssetURLs{
			Enabled: user.TransformAssetURLs.Enabled,
			Mapping: mergeSliceMap(out.TransformAssetURLs.Mapping, user.TransformAssetURLs.Mapping),
		}
	}
	if user.ImportComposables != nil {
		out.ImportComposables = *user.ImportComposables
	}
	if user.PrefixComposables != nil {
		out.PrefixComposables = *user.PrefixComposables
	}
	if user.Persistence != nil {
		out.Persistence = mergePersistence(out.Persistence, *user.Persistence)
	}
	if user.Preload != nil {
		if user.Preload.Fonts != nil {
			out.Preload.Fonts = *user.Preload.Fonts
		}
		if user.Preload.CriticalCSS != nil {
			out.Preload.CriticalCSS = *user.Preload.CriticalCSS
		}
	}
	if user.Logger != nil {
		if user.Logger.Level != nil {
			out.Logger.Level = *user.Logger.Level
		}
		if user.Logger.Tag != nil {
			out.Logger.Tag = *user.Logger.Tag
		}
	}

	return out
}

// MergeThemes merges override themes over base themes by name.
func MergeThemes(base, overrides map[string]ThemeDefinition) map[string]ThemeDefinition {
	if base == nil && overrides == nil {
		return nil
	}
	out := CloneThemes(base)
	if out == nil {
		out = make(map[string]ThemeDefinition, len(overrides))
	}
	for name, override := range overrides {
		current, ok := out[name]
		if !ok {
			out[name] = CloneTheme(override)
			continue
		}
		out[name] = MergeTheme(current, override)
	}
	return out
}

// MergeTheme merges one override over one base at the colour-token level.
// The dark flag is taken from the override only when the override sets it.
func MergeTheme(base, override ThemeDefinition) ThemeDefinition {
	out := CloneTheme(base)
	if override.Dark != nil {
		dark := *override.Dark
		out.Dark = &dark
	}
	out.Colors = mergeStringMap(out.Colors, override.Colors)
	out.Variables = MergeTree(out.Variables, override.Variables)
	return out
}

// MergeTree deep-merges two plain-data mappings: nested mappings merge, all other values replace.
func MergeTree(base, override map[string]any) map[string]any {
	if override == nil {
		return CloneTree(base)
	}
	out := CloneTree(base)
	if out == nil {
		out = make(map[string]any, len(override))
	}
	for key, value := range override {
		baseChild, baseIsMap := out[key].(map[string]any)
		overrideChild, overrideIsMap := value.(map[string]any)
		if baseIsMap && overrideIsMap {
			out[key] = MergeTree(baseChild, overrideChild)
			continue
		}
		out[key] = cloneValue(value)
	}
	return out
}

func mergeBlueprint(base, override Blueprint) Blueprint {
	if base.Inline != nil && override.Inline != nil {
		return Blueprint{Inline: MergeTree(base.Inline, override.Inline)}
	}
	return cloneBlueprint(override)
}

func mergeDisplay(base, override *Display) *Display {
	if override == nil {
		return cloneDisplay(base)
	}
	if base == nil {
		return cloneDisplay(override)
	}
	out := cloneDisplay(base)
	if override.MobileBreakpoint != nil {
		out.MobileBreakpoint = override.MobileBreakpoint
	}
	out.Thresholds = mergeIntMap(out.Thresholds, override.Thresholds)
	return out
}

func mergeGoTo(base, override *GoTo) *GoTo {
	if override == nil {
		return cloneGoTo(base)
	}
	if base == nil {
		return cloneGoTo(override)
	}
	out := cloneGoTo(base)
	if override.Container != "" {
		out.Container = override.Container
	}
	if override.Duration != nil {
		out.Duration = cloneIntPtr(override.Duration)
	}
	if override.Easing != "" {
		out.Easing = override.Easing
	}
	if override.Offset != nil {
		out.Offset = cloneIntPtr(override.Offset)
	}
	return out
}

func mergeLocale(base Locale, override PartialLocale) Locale {
	out := cloneLocale(base)
	if override.Locale != nil {
		out.Locale = *override.Locale
	}
	if override.Fallback != nil {
		out.Fallback = *override.Fallback
	}
	out.Messages = MergeTree(out.Messages, override.Messages)
	out.RTL = mergeBoolMap(out.RTL, override.RTL)
	return out
}

func mergeDate(base DateOptions, override PartialDate) DateOptions {
	out := cloneDate(base)
	if override.Adapter != nil {
		out.Adapter = *override.Adapter
	}
	out.Locale = mergeStringMap(out.Locale, override.Locale)
	out.Formats = mergeStringMap(out.Formats, override.Formats)
	return out
}

func mergeTreeShaking(base TreeShaking, override PartialTreeShaking) TreeShaking {
	out := base
	if override.Enabled != nil {
		out.Enabled = *override.Enabled
	}
	if override.LabComponents != nil {
		out.LabComponents = *override.LabComponents
	}
	out.IgnoreComponents = cloneStringSlice(base.IgnoreComponents)
	if override.IgnoreComponents != nil {
		out.IgnoreComponents = cloneStringSlice(override.IgnoreComponents)
	}
	out.IgnoreDirectives = cloneStringSlice(base.IgnoreDirectives)
	if override.IgnoreDirectives != nil {
		out.IgnoreDirectives = cloneStringSlice(override.IgnoreDirectives)
	}
	return out
}

func mergePersistence(base Persistence, override PartialPersistence) Persistence {
	out := base
	if override.Enabled != nil {
		out.Enabled = *override.Enabled
	}
	if override.Storage != nil {
		out.Storage = *override.Storage
	}
	if override.Key != nil {
		out.Key = *override.Key
	}
	if c := override.Cookie; c != nil {
		if c.MaxAge != nil {
			out.Cookie.MaxAge = *c.MaxAge
		}
		if c.Path != nil {
			out.Cookie.Path = *c.Path
		}
		if c.SameSite != nil {
			out.Cookie.SameSite = *c.SameSite
		}
	}
	return out
}

func mergeStringMap(base, override map[string]string) map[string]string {
	out := cloneStringMap(base)
	if override == nil {
		return out
	}
	if out == nil {
		out = make(map[string]string, len(override))
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func mergeBoolMap(base, override map[string]bool) map[string]bool {
	out := cloneBoolMap(base)
	if override == nil {
		return out
	}
	if out == nil {
		out = make(map[string]bool, len(override))
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func mergeIntMap(base, override map[string]int) map[string]int {
	out := cloneIntMap(base)
	if override == nil {
		return out
	}
	if out == nil {
		out = make(map[string]int, len(override))
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func mergeSliceMap(base, override map[string][]string) map[string][]string {
	out := cloneSliceMap(base)
	if override == nil {
		return out
	}
	if out == nil {
		out = make(map[string][]string, len(override))
	}
	for k, v := range override {
		out[k] = cloneStringSlice(v)
	}
	return out
}
