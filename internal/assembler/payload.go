package assembler

import (
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/adapter"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
)

// Context is the execution context a payload is assembled for.
type Context string

const (
	Client Context = "client"
	Server Context = "server"
)

// Payload is the initialization object handed to the UI library constructor.
type Payload struct {
	SSR         bool                         `json:"ssr"`
	Theme       ThemeConfig                  `json:"theme"`
	Icons       adapter.IconConfig           `json:"icons"`
	Defaults    map[string]any               `json:"defaults"`
	Directives  []string                     `json:"directives"`
	Locale      *LocaleConfig                `json:"locale,omitempty"`
	Date        *DateConfig                  `json:"date,omitempty"`
	Aliases     map[string]adapter.Component `json:"aliases,omitempty"`
	Blueprint   any                          `json:"blueprint,omitempty"`
	GoTo        *config.GoTo                 `json:"goTo,omitempty"`
	Display     *config.Display              `json:"display,omitempty"`
	Persistence *config.Persistence          `json:"persistence,omitempty"`
}

// ThemeConfig is the theme section of a payload.
type ThemeConfig struct {
	DefaultTheme string                            `json:"defaultTheme"`
	Themes       map[string]config.ThemeDefinition `json:"themes"`
}

// LocaleConfig holds only the locale settings that were actually given.
type LocaleConfig struct {
	Locale   string          `json:"locale,omitempty"`
	Fallback string          `json:"fallback,omitempty"`
	Messages map[string]any  `json:"messages,omitempty"`
	RTL      map[string]bool `json:"rtl,omitempty"`
}

// DateConfig is the date section of a payload.
type DateConfig struct {
	Adapter adapter.DateAdapter `json:"adapter"`
	Locale  map[string]string   `json:"locale,omitempty"`
	Formats map[string]string   `json:"formats,omitempty"`
}

// Directives lists the directives registered on every instance.
func Directives() []string {
	return []string{
		"ClickOutside",
		"Intersect",
		"Mutate",
		"Resize",
		"Ripple",
		"Scroll",
		"Tooltip",
		"Touch",
	}
}
