package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/theme"
)

type themesOptions struct {
	css    bool
	minify bool
}

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Show the composed theme palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "Print the theme stylesheet instead of swatches")
	cmd.Flags().BoolVar(&opts.minify, "minify", false, "Minify the stylesheet (with --css)")

	return cmd
}

func runThemes(cmd *cobra.Command, rootFlags *rootFlags, opts *themesOptions) error {
	partial, err := loadOptions(rootFlags)
	if err != nil {
		return newCommandError("themes", "loading options", err, "Check that the file exists and is valid YAML.")
	}

	merged := config.MergeDefaults(partial)
	themes := theme.ComposeBuiltin(merged.Themes)

	if opts.css {
		css, err := theme.CSS(themes, merged.DefaultTheme)
		if err == nil && opts.minify {
			css, err = theme.Minify(css)
		}
		if err != nil {
			return newCommandError("themes", "rendering the theme stylesheet", err, "Run 'nuxtvuetify validate' to find malformed colours.")
		}
		fmt.Fprint(cmd.OutOrStdout(), css)
		return nil
	}

	return renderSwatches(cmd.OutOrStdout(), themes, merged.DefaultTheme, supportsColor(cmd.OutOrStdout()))
}

var (
	themeTitleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Faint(true)
)

func renderSwatches(out io.Writer, themes map[string]config.ThemeDefinition, defaultTheme string, color bool) error {
	for _, name := range config.SortedKeys(themes) {
		def := themes[name]

		title := name
		if def.Dark != nil && *def.Dark {
			title += " (dark)"
		}
		if name == defaultTheme {
			title += " *"
		}
		if color {
			title = themeTitleStyle.Render(title)
		}
		fmt.Fprintln(out, title)

		for _, token := range config.SortedKeys(def.Colors) {
			value := def.Colors[token]
			fmt.Fprintf(out, "  %s\n", swatch(token, value, color))
		}
		if missing := theme.Missing(def); len(missing) > 0 {
			line := "  missing: " + strings.Join(missing, ", ")
			if color {
				line = mutedStyle.Render(line)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func swatch(token, value string, color bool) string {
	label := fmt.Sprintf("%-22s %s", token, value)
	if !color {
		return label
	}
	c, err := theme.ParseColor(value)
	if err != nil {
		return label + " " + mutedStyle.Render("(invalid)")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(theme.OnColor(c))).
		Padding(0, 1).
		Render(label)
}

func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
