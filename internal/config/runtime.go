package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// RuntimeConfig is the public runtime configuration shared by the build and both
// runtime contexts. It holds plain data only: symbolic names are re-resolved in
// each context.
type RuntimeConfig struct {
	DefaultTheme string                     `json:"defaultTheme,omitempty"`
	Themes       map[string]ThemeDefinition `json:"themes,omitempty"`
	Icons        IconSet                    `json:"icons,omitempty"`
	IconsCDN     bool                       `json:"iconsCdn,omitempty"`
	Blueprint    *Blueprint                 `json:"blueprint,omitempty"`
	Aliases      map[string]string          `json:"aliases,omitempty"`
	Defaults     map[string]any             `json:"defaults,omitempty"`
	Display      *Display                   `json:"display,omitempty"`
	GoTo         *GoTo                      `json:"goTo,omitempty"`
	Locale       *Locale                    `json:"locale,omitempty"`
	Date         *DateOptions               `json:"date,omitempty"`
	SSR          bool                       `json:"ssr"`
	Persistence  *Persistence               `json:"persistence,omitempty"`
}

// ToRuntimeConfig derives the runtime configuration from merged options.
func ToRuntimeConfig(opts Options) RuntimeConfig {
	opts = Clone(opts)

	rc := RuntimeConfig{
		DefaultTheme: opts.DefaultTheme,
		Themes:       opts.Themes,
		Icons:        opts.Icons,
		IconsCDN:     opts.IconsCDN,
		Aliases:      opts.Aliases,
		Defaults:     opts.Defaults,
		Display:      opts.Display,
		GoTo:         opts.GoTo,
		SSR:          opts.SSR,
	}
	if !opts.Blueprint.IsZero() {
		bp := opts.Blueprint
		rc.Blueprint = &bp
	}
	locale := opts.Locale
	rc.Locale = &locale
	if opts.Date.Adapter != "" {
		date := opts.Date
		rc.Date = &date
	}
	if opts.Persistence.Enabled {
		persistence := opts.Persistence
		rc.Persistence = &persistence
	}
	return rc
}

// CloneRuntimeConfig returns a deep copy of rc.
func CloneRuntimeConfig(rc RuntimeConfig) RuntimeConfig {
	out := rc
	out.Themes = CloneThemes(rc.Themes)
	if rc.Blueprint != nil {
		bp := cloneBlueprint(*rc.Blueprint)
		out.Blueprint = &bp
	}
	out.Aliases = cloneStringMap(rc.Aliases)
	out.Defaults = CloneTree(rc.Defaults)
	out.Display = cloneDisplay(rc.Display)
	out.GoTo = cloneGoTo(rc.GoTo)
	if rc.Locale != nil {
		locale := cloneLocale(*rc.Locale)
		out.Locale = &locale
	}
	if rc.Date != nil {
		date := cloneDate(*rc.Date)
		out.Date = &date
	}
	if rc.Persistence != nil {
		persistence := *rc.Persistence
		out.Persistence = &persistence
	}
	return out
}

// EncodeRuntimeConfig renders the runtime configuration as indented JSON.
func EncodeRuntimeConfig(rc RuntimeConfig) ([]byte, error) {
	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode runtime config: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeRuntimeConfig parses a runtime configuration produced by EncodeRuntimeConfig.
func DecodeRuntimeConfig(data []byte) (RuntimeConfig, error) {
	var rc RuntimeConfig
	if err := json.Unmarshal(data, &rc); err != nil {
		return RuntimeConfig{}, fmt.Errorf("decode runtime config: %w", err)
	}
	return rc, nil
}

// WriteRuntimeConfig atomically replaces path with the encoded runtime configuration.
func WriteRuntimeConfig(path string, rc RuntimeConfig) error {
	data, err := EncodeRuntimeConfig(rc)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write runtime config %s: %w", path, err)
	}
	return nil
}

// ReadRuntimeConfig loads a runtime configuration written by WriteRuntimeConfig.
func ReadRuntimeConfig(path string) (RuntimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("read runtime config %s: %w", path, err)
	}
	return DecodeRuntimeConfig(data)
}
