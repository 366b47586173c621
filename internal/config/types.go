package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// IconSet names the icon font or SVG set the UI library renders with.
type IconSet string

// IconNone is the `icons: false` opt-out.
const IconNone IconSet = "none"

// UnmarshalYAML accepts a set name or `false`.
func (s *IconSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("icons must be a set name or false")
	}
	if value.Tag == "!!bool" {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		if enabled {
			return fmt.Errorf("icons: true is not a set name")
		}
		*s = IconNone
		return nil
	}
	*s = IconSet(value.Value)
	return nil
}

// MarshalJSON writes IconNone as `false` so the runtime side sees the original opt-out.
func (s IconSet) MarshalJSON() ([]byte, error) {
	if s == IconNone {
		return []byte("false"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON accepts a set name or `false`.
func (s *IconSet) UnmarshalJSON(data []byte) error {
	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		if enabled {
			return fmt.Errorf("icons: true is not a set name")
		}
		*s = IconNone
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = IconSet(name)
	return nil
}

// Blueprint selects a built-in preset by name or carries an inline preset.
// The zero value means no blueprint.
type Blueprint struct {
	Name   string
	Inline map[string]any
}

// IsZero reports whether no blueprint is selected.
func (b Blueprint) IsZero() bool {
	return b.Name == "" && b.Inline == nil
}

// UnmarshalYAML accepts a preset name, an inline mapping or `false`.
func (b *Blueprint) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!bool" {
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return err
			}
			if enabled {
				return fmt.Errorf("blueprint: true is not a preset name")
			}
			*b = Blueprint{}
			return nil
		}
		*b = Blueprint{Name: value.Value}
		return nil
	case yaml.MappingNode:
		var inline map[string]any
		if err := value.Decode(&inline); err != nil {
			return err
		}
		*b = Blueprint{Inline: inline}
		return nil
	default:
		return fmt.Errorf("blueprint must be a preset name or a mapping")
	}
}

// MarshalJSON writes the name, the inline object, or false.
func (b Blueprint) MarshalJSON() ([]byte, error) {
	switch {
	case b.Inline != nil:
		return json.Marshal(b.Inline)
	case b.Name != "":
		return json.Marshal(b.Name)
	default:
		return []byte("false"), nil
	}
}

// UnmarshalJSON accepts a name, an object, false or null.
func (b *Blueprint) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*b = Blueprint{Name: v}
	case map[string]any:
		*b = Blueprint{Inline: v}
	case nil, bool:
		*b = Blueprint{}
	default:
		return fmt.Errorf("blueprint must be a preset name or an object")
	}
	return nil
}

// StyleMode is the style loading strategy.
type StyleMode string

const (
	StylesCSS  StyleMode = "css"
	StylesNone StyleMode = "none"
	StylesSass StyleMode = "sass"
)

// UnmarshalYAML maps `true` to precompiled CSS and `false` to none.
func (m *StyleMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("styles must be true, false, 'none' or 'sass'")
	}
	if value.Tag == "!!bool" {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		if enabled {
			*m = StylesCSS
		} else {
			*m = StylesNone
		}
		return nil
	}
	*m = StyleMode(value.Value)
	return nil
}

// ComposablePrefix is the prefix inserted after `use` in auto-imported composables.
type ComposablePrefix string

// DefaultComposablePrefix is used when prefixComposables is `true`.
const DefaultComposablePrefix ComposablePrefix = "V"

// UnmarshalYAML accepts a boolean or an explicit prefix.
func (p *ComposablePrefix) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("prefixComposables must be a boolean or a string")
	}
	if value.Tag == "!!bool" {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		if enabled {
			*p = DefaultComposablePrefix
		} else {
			*p = ""
		}
		return nil
	}
	*p = ComposablePrefix(value.Value)
	return nil
}

// ThemeDefinition is one named palette. Dark is nil when the flag was never given.
type ThemeDefinition struct {
	Dark      *bool             `yaml:"dark,omitempty" json:"dark,omitempty"`
	Colors    map[string]string `yaml:"colors,omitempty" json:"colors,omitempty"`
	Variables map[string]any    `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// Locale configures UI strings and text direction.
type Locale struct {
	Locale   string          `yaml:"locale,omitempty" json:"locale,omitempty"`
	Fallback string          `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Messages map[string]any  `yaml:"messages,omitempty" json:"messages,omitempty"`
	RTL      map[string]bool `yaml:"rtl,omitempty" json:"rtl,omitempty"`
}

// DateOptions selects the date adapter by name. Locale maps UI locale codes to adapter locale names.
type DateOptions struct {
	Adapter string            `yaml:"adapter,omitempty" json:"adapter,omitempty" validate:"omitempty,date_adapter"`
	Locale  map[string]string `yaml:"locale,omitempty" json:"locale,omitempty"`
	Formats map[string]string `yaml:"formats,omitempty" json:"formats,omitempty"`
}

// Display overrides breakpoint behaviour. MobileBreakpoint is a breakpoint name or a pixel width.
type Display struct {
	MobileBreakpoint any            `yaml:"mobileBreakpoint,omitempty" json:"mobileBreakpoint,omitempty"`
	Thresholds       map[string]int `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
}

// GoTo configures programmatic scrolling.
type GoTo struct {
	Container string `yaml:"container,omitempty" json:"container,omitempty"`
	Duration  *int   `yaml:"duration,omitempty" json:"duration,omitempty"`
	Easing    string `yaml:"easing,omitempty" json:"easing,omitempty"`
	Offset    *int   `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// TreeShaking controls build-time elimination of unused components and directives.
type TreeShaking struct {
	Enabled          bool     `json:"enabled"`
	LabComponents    bool     `json:"labComponents,omitempty"`
	IgnoreComponents []string `json:"ignoreComponents,omitempty"`
	IgnoreDirectives []string `json:"ignoreDirectives,omitempty"`
}

// AssetURLs controls transformAssetUrls. A nil Mapping with Enabled set means the built-in mapping.
type AssetURLs struct {
	Enabled bool                `json:"enabled"`
	Mapping map[string][]string `json:"mapping,omitempty"`
}

// UnmarshalYAML accepts a boolean or a custom mapping.
func (a *AssetURLs) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		*a = AssetURLs{Enabled: enabled}
		return nil
	case yaml.MappingNode:
		var mapping map[string][]string
		if err := value.Decode(&mapping); err != nil {
			return err
		}
		*a = AssetURLs{Enabled: true, Mapping: mapping}
		return nil
	default:
		return fmt.Errorf("transformAssetUrls must be a boolean or a mapping")
	}
}

// CookieOptions are the attributes of the theme preference cookie.
type CookieOptions struct {
	MaxAge   int    `yaml:"maxAge,omitempty" json:"maxAge,omitempty"`
	Path     string `yaml:"path,omitempty" json:"path,omitempty"`
	SameSite string `yaml:"sameSite,omitempty" json:"sameSite,omitempty" validate:"omitempty,oneof=lax strict none"`
}

// Persistence describes where the selected theme is remembered.
type Persistence struct {
	Enabled bool          `json:"enabled"`
	Storage string        `json:"storage,omitempty" validate:"omitempty,oneof=cookie localStorage sessionStorage"`
	Key     string        `json:"key,omitempty"`
	Cookie  CookieOptions `json:"cookieOptions"`
}

// Preload toggles head preloads emitted at build time.
type Preload struct {
	Fonts       bool `json:"fonts"`
	CriticalCSS bool `json:"criticalCSS"`
}

// LoggerOptions configures the module logger.
type LoggerOptions struct {
	Level string `json:"level,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Options is the complete module configuration after defaults are applied.
type Options struct {
	Enabled            bool                       `json:"enabled"`
	DefaultTheme       string                     `json:"defaultTheme" validate:"required"`
	Themes             map[string]ThemeDefinition `json:"themes,omitempty" validate:"dive"`
	Icons              IconSet                    `json:"icons" validate:"icon_set"`
	IconsCDN           bool                       `json:"iconsCdn"`
	Blueprint          Blueprint                  `json:"blueprint"`
	Aliases            map[string]string          `json:"aliases,omitempty" validate:"dive,keys,required,endkeys,required"`
	Defaults           map[string]any             `json:"defaults,omitempty"`
	Display            *Display                   `json:"display,omitempty"`
	GoTo               *GoTo                      `json:"goTo,omitempty"`
	Locale             Locale                     `json:"locale"`
	Date               DateOptions                `json:"date"`
	SSR                bool                       `json:"ssr"`
	TreeShaking        TreeShaking                `json:"treeshaking"`
	Styles             StyleMode                  `json:"styles" validate:"oneof=css none sass"`
	CustomVariables    string                     `json:"customVariables,omitempty"`
	TransformAssetURLs AssetURLs                  `json:"transformAssetUrls"`
	ImportComposables  bool                       `json:"importComposables"`
	PrefixComposables  ComposablePrefix           `json:"prefixComposables,omitempty"`
	Persistence        Persistence                `json:"persistence"`
	Preload            Preload                    `json:"preload"`
	Logger             LoggerOptions              `json:"logger"`
}

// PartialLocale is user-supplied locale input; nil pointers are unset.
type PartialLocale struct {
	Locale   *string         `yaml:"locale"`
	Fallback *string         `yaml:"fallback"`
	Messages map[string]any  `yaml:"messages"`
	RTL      map[string]bool `yaml:"rtl"`
}

// PartialDate is user-supplied date adapter input.
type PartialDate struct {
	Adapter *string           `yaml:"adapter"`
	Locale  map[string]string `yaml:"locale"`
	Formats map[string]string `yaml:"formats"`
}

// PartialTreeShaking accepts `treeshaking: bool` or the detail mapping.
type PartialTreeShaking struct {
	Enabled          *bool    `yaml:"enabled"`
	LabComponents    *bool    `yaml:"labComponents"`
	IgnoreComponents []string `yaml:"ignoreComponents"`
	IgnoreDirectives []string `yaml:"ignoreDirectives"`
}

// UnmarshalYAML accepts a boolean shorthand or the detail mapping.
func (t *PartialTreeShaking) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		*t = PartialTreeShaking{Enabled: &enabled}
		return nil
	}
	type rawTreeShaking PartialTreeShaking
	var raw rawTreeShaking
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*t = PartialTreeShaking(raw)
	return nil
}

// PartialCookie is user-supplied cookie input.
type PartialCookie struct {
	MaxAge   *int    `yaml:"maxAge"`
	Path     *string `yaml:"path"`
	SameSite *string `yaml:"sameSite"`
}

// PartialPersistence is user-supplied persistence input.
type PartialPersistence struct {
	Enabled *bool          `yaml:"enabled"`
	Storage *string        `yaml:"storage"`
	Key     *string        `yaml:"key"`
	Cookie  *PartialCookie `yaml:"cookieOptions"`
}

// PartialPreload is user-supplied preload input.
type PartialPreload struct {
	Fonts       *bool `yaml:"fonts"`
	CriticalCSS *bool `yaml:"criticalCSS"`
}

// PartialLogger is user-supplied logger input.
type PartialLogger struct {
	Level *string `yaml:"level"`
	Tag   *string `yaml:"tag"`
}

// PartialOptions is user input before defaults are applied. Nil pointers and nil
// maps are unset. Ignored lists keys that were unknown or had the wrong shape.
type PartialOptions struct {
	Enabled            *bool
	DefaultTheme       *string
	Themes             map[string]ThemeDefinition
	Icons              *IconSet
	IconsCDN           *bool
	Blueprint          *Blueprint
	Aliases            map[string]string
	Defaults           map[string]any
	Display            *Display
	GoTo               *GoTo
	Locale             *PartialLocale
	Date               *PartialDate
	SSR                *bool
	TreeShaking        *PartialTreeShaking
	Styles             *StyleMode
	CustomVariables    *string
	TransformAssetURLs *AssetURLs
	ImportComposables  *bool
	PrefixComposables  *ComposablePrefix
	Persistence        *PartialPersistence
	Preload            *PartialPreload
	Logger             *PartialLogger

	Ignored []string
}
