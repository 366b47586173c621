package config

// Clone returns an alias-free deep copy of Options.
// Only reference types (maps/slices/pointers) are cloned; plain fields copy by value.
func Clone(in Options) Options {
	out := in

	out.Themes = CloneThemes(in.Themes)
	out.Blueprint = cloneBlueprint(in.Blueprint)
	out.Aliases = cloneStringMap(in.Aliases)
	out.Defaults = CloneTree(in.Defaults)
	out.Display = cloneDisplay(in.Display)
	out.GoTo = cloneGoTo(in.GoTo)
	out.Locale = cloneLocale(in.Locale)
	out.Date = cloneDate(in.Date)

	out.TreeShaking.IgnoreComponents = cloneStringSlice(in.TreeShaking.IgnoreComponents)
	out.TreeShaking.IgnoreDirectives = cloneStringSlice(in.TreeShaking.IgnoreDirectives)
	out.TransformAssetURLs.Mapping = cloneSliceMap(in.TransformAssetURLs.Mapping)

	return out
}

// CloneThemes deep-copies a theme table, preserving nil.
func CloneThemes(in map[string]ThemeDefinition) map[string]ThemeDefinition {
	if in == nil {
		return nil
	}
	out := make(map[string]ThemeDefinition, len(in))
	for name, def := range in {
		out[name] = CloneTheme(def)
	}
	return out
}

// CloneTheme deep-copies one theme definition.
func CloneTheme(in ThemeDefinition) ThemeDefinition {
	out := ThemeDefinition{
		Colors:    cloneStringMap(in.Colors),
		Variables: CloneTree(in.Variables),
	}
	if in.Dark != nil {
		dark := *in.Dark
		out.Dark = &dark
	}
	return out
}

// CloneTree deep-copies a nested mapping of plain data.
func CloneTree(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return CloneTree(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneBlueprint(in Blueprint) Blueprint {
	return Blueprint{Name: in.Name, Inline: CloneTree(in.Inline)}
}

func cloneDisplay(in *Display) *Display {
	if in == nil {
		return nil
	}
	return &Display{
		MobileBreakpoint: in.MobileBreakpoint,
		Thresholds:       cloneIntMap(in.Thresholds),
	}
}

func cloneGoTo(in *GoTo) *GoTo {
	if in == nil {
		return nil
	}
	out := *in
	out.Duration = cloneIntPtr(in.Duration)
	out.Offset = cloneIntPtr(in.Offset)
	return &out
}

func cloneLocale(in Locale) Locale {
	return Locale{
		Locale:   in.Locale,
		Fallback: in.Fallback,
		Messages: CloneTree(in.Messages),
		RTL:      cloneBoolMap(in.RTL),
	}
}

func cloneDate(in DateOptions) DateOptions {
	return DateOptions{
		Adapter: in.Adapter,
		Locale:  cloneStringMap(in.Locale),
		Formats: cloneStringMap(in.Formats),
	}
}

func cloneStringSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneBoolMap(in map[string]bool) map[string]bool {
	if in == nil {
		return nil
	}
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneIntMap(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneSliceMap(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = cloneStringSlice(v)
	}
	return out
}

func cloneIntPtr(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
