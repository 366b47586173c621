package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
)

var identPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

const (
	onLight = "#FFFFFF"
	onDark  = "#000000"
)

// Stylesheet renders themes as minified CSS custom properties.
func Stylesheet(themes map[string]config.ThemeDefinition, defaultTheme string) (string, error) {
	css, err := CSS(themes, defaultTheme)
	if err != nil {
		return "", err
	}
	return Minify(css)
}

// CSS renders one `.v-theme--<name>` rule per theme with `--v-theme-<token>: r,g,b`
// variables and a contrasting `--v-theme-on-<token>` for every colour that has
// no explicit on-colour. The default theme also applies to :root; with the
// system default, light applies to :root and dark follows prefers-color-scheme.
func CSS(themes map[string]config.ThemeDefinition, defaultTheme string) (string, error) {
	var (
		b        strings.Builder
		problems []error
	)

	rootTheme := defaultTheme
	if defaultTheme == config.ThemeSystem {
		rootTheme = config.ThemeLight
	}

	for _, name := range config.SortedKeys(themes) {
		if !identPattern.MatchString(name) {
			problems = append(problems, fmt.Errorf("theme %q: name is not a CSS identifier", name))
			continue
		}
		selector := ".v-theme--" + name
		if name == rootTheme {
			selector = ":root, " + selector
		}
		fmt.Fprintf(&b, "%s {\n", selector)
		problems = append(problems, writeDeclarations(&b, name, themes[name], "  ")...)
		b.WriteString("}\n")
	}

	if dark, ok := themes[config.ThemeDark]; ok && defaultTheme == config.ThemeSystem {
		b.WriteString("@media (prefers-color-scheme: dark) {\n  :root {\n")
		problems = append(problems, writeDeclarations(&b, config.ThemeDark, dark, "    ")...)
		b.WriteString("  }\n}\n")
	}

	if err := errors.Join(problems...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeDeclarations(b *strings.Builder, name string, def config.ThemeDefinition, indent string) []error {
	var problems []error

	scheme := "normal"
	if def.Dark != nil && *def.Dark {
		scheme = "dark"
	}
	fmt.Fprintf(b, "%scolor-scheme: %s;\n", indent, scheme)

	for _, token := range config.SortedKeys(def.Colors) {
		if !identPattern.MatchString(token) {
			problems = append(problems, fmt.Errorf("theme %q: token %q is not a CSS identifier", name, token))
			continue
		}
		c, err := ParseColor(def.Colors[token])
		if err != nil {
			problems = append(problems, fmt.Errorf("theme %q: %s: %w", name, token, err))
			continue
		}
		fmt.Fprintf(b, "%s--v-theme-%s: %s;\n", indent, token, channels(c))

		if strings.HasPrefix(token, "on-") {
			continue
		}
		if _, explicit := def.Colors["on-"+token]; explicit {
			continue
		}
		on, _ := ParseColor(OnColor(c))
		fmt.Fprintf(b, "%s--v-theme-on-%s: %s;\n", indent, token, channels(on))
	}

	for _, key := range config.SortedKeys(def.Variables) {
		if !identPattern.MatchString(key) {
			problems = append(problems, fmt.Errorf("theme %q: variable %q is not a CSS identifier", name, key))
			continue
		}
		switch v := def.Variables[key].(type) {
		case string, int, int64, float64, bool:
			fmt.Fprintf(b, "%s--v-%s: %v;\n", indent, key, v)
		default:
			problems = append(problems, fmt.Errorf("theme %q: variable %q is not a scalar", name, key))
		}
	}
	return problems
}

// ParseColor parses #rgb, #rgba, #rrggbb and #rrggbbaa. Alpha is dropped.
func ParseColor(hex string) (colorful.Color, error) {
	switch len(hex) {
	case 5:
		hex = hex[:4]
	case 9:
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q is not a hex colour", hex)
	}
	return c, nil
}

// OnColor returns white or black, whichever contrasts more with c.
func OnColor(c colorful.Color) string {
	r, g, b := c.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	againstWhite := 1.05 / (luminance + 0.05)
	againstBlack := (luminance + 0.05) / 0.05
	if againstWhite >= againstBlack {
		return onLight
	}
	return onDark
}

func channels(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%d,%d,%d", r, g, b)
}

// Minify compacts a stylesheet with esbuild.
func Minify(css string) (string, error) {
	result := api.Transform(css, api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
	})
	if len(result.Errors) > 0 {
		problems := make([]error, 0, len(result.Errors))
		for _, msg := range result.Errors {
			problems = append(problems, errors.New(msg.Text))
		}
		return "", fmt.Errorf("minify theme css: %w", errors.Join(problems...))
	}
	return string(result.Code), nil
}
