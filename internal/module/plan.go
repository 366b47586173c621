package module

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/theme"
)

// ThemeStyleID identifies the critical theme stylesheet in the document head.
const ThemeStyleID = "vuetify-theme-stylesheet"

// BuildPlan is everything the module registers with the host build.
type BuildPlan struct {
	Styles             StylePlan           `json:"styles"`
	TransformAssetURLs map[string][]string `json:"transformAssetUrls,omitempty"`
	Imports            []Import            `json:"imports,omitempty"`
	TreeShaking        TreeShakingPlan     `json:"treeshaking"`
	Head               Head                `json:"head"`
	I18n               bool                `json:"i18n,omitempty"`
}

// StylePlan selects the stylesheets added to the build.
type StylePlan struct {
	Mode       config.StyleMode `json:"mode"`
	CSS        []string         `json:"css,omitempty"`
	ConfigFile string           `json:"configFile,omitempty"`
}

// Import is one auto-imported composable.
type Import struct {
	Name string `json:"name"`
	As   string `json:"as"`
	From string `json:"from"`
}

// TreeShakingPlan configures component auto-import in the bundler.
type TreeShakingPlan struct {
	AutoImport       bool     `json:"autoImport"`
	LabComponents    bool     `json:"labComponents,omitempty"`
	IgnoreComponents []string `json:"ignoreComponents,omitempty"`
	IgnoreDirectives []string `json:"ignoreDirectives,omitempty"`
}

// Head holds document head additions.
type Head struct {
	Links  []HeadLink  `json:"links,omitempty"`
	Styles []HeadStyle `json:"styles,omitempty"`
}

// HeadLink is a <link> element.
type HeadLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
	As   string `json:"as,omitempty"`
}

// HeadStyle is an inline <style> element.
type HeadStyle struct {
	ID  string `json:"id"`
	CSS string `json:"css"`
}

// PlanOptions carries host facts the plan depends on.
type PlanOptions struct {
	I18n bool
	// Components are the names ignore patterns are matched against.
	Components []string
	Logger     *logger.Logger
}

type iconAssets struct {
	css string
	cdn string
}

var iconStyles = map[config.IconSet]iconAssets{
	config.IconMDI: {css: "@mdi/font/css/materialdesignicons.css", cdn: "https://cdn.jsdelivr.net/npm/@mdi/font@latest/css/materialdesignicons.min.css"},
	config.IconFA:  {css: "@fortawesome/fontawesome-free/css/all.css", cdn: "https://cdn.jsdelivr.net/npm/@fortawesome/fontawesome-free@latest/css/all.min.css"},
	config.IconFA4: {css: "font-awesome/css/font-awesome.min.css", cdn: "https://cdn.jsdelivr.net/npm/font-awesome@4.x/css/font-awesome.min.css"},
	config.IconMD:  {css: "material-design-icons-iconfont/dist/material-design-icons.css", cdn: "https://fonts.googleapis.com/css?family=Material+Icons"},
}

// Plan derives the build registrations from merged options.
func Plan(opts config.Options, planOpts PlanOptions) BuildPlan {
	plan := BuildPlan{
		Styles:      stylePlan(opts),
		TreeShaking: treeShakingPlan(opts.TreeShaking, planOpts.Components),
		I18n:        planOpts.I18n,
	}

	if opts.TransformAssetURLs.Enabled {
		plan.TransformAssetURLs = opts.TransformAssetURLs.Mapping
		if plan.TransformAssetURLs == nil {
			plan.TransformAssetURLs = config.DefaultAssetURLs()
		}
	}

	if opts.ImportComposables {
		for _, name := range config.Composables() {
			plan.Imports = append(plan.Imports, Import{
				Name: name,
				As:   prefixComposable(name, string(opts.PrefixComposables)),
				From: config.ModuleKey,
			})
		}
	}

	if assets, ok := iconStyles[opts.Icons]; ok {
		if opts.IconsCDN {
			plan.Head.Links = append(plan.Head.Links, HeadLink{Rel: "stylesheet", Href: assets.cdn})
			if opts.Preload.Fonts {
				plan.Head.Links = append(plan.Head.Links, HeadLink{Rel: "preload", Href: assets.cdn, As: "style"})
			}
		} else if opts.Styles != config.StylesNone {
			plan.Styles.CSS = append(plan.Styles.CSS, assets.css)
		}
	}

	if opts.Preload.CriticalCSS {
		css, err := theme.Stylesheet(theme.ComposeBuiltin(opts.Themes), opts.DefaultTheme)
		if err != nil {
			planOpts.Logger.Error(err, "critical theme css skipped")
		} else {
			plan.Head.Styles = append(plan.Head.Styles, HeadStyle{ID: ThemeStyleID, CSS: css})
		}
	}

	return plan
}

func stylePlan(opts config.Options) StylePlan {
	plan := StylePlan{Mode: opts.Styles}
	switch opts.Styles {
	case config.StylesCSS:
		plan.CSS = []string{"vuetify/styles"}
	case config.StylesSass:
		plan.CSS = []string{"vuetify/styles/main.sass"}
		plan.ConfigFile = opts.CustomVariables
	}
	return plan
}

func treeShakingPlan(ts config.TreeShaking, components []string) TreeShakingPlan {
	if !ts.Enabled {
		return TreeShakingPlan{}
	}
	return TreeShakingPlan{
		AutoImport:       true,
		LabComponents:    ts.LabComponents,
		IgnoreComponents: expandPatterns(ts.IgnoreComponents, components),
		IgnoreDirectives: append([]string(nil), ts.IgnoreDirectives...),
	}
}

// expandPatterns replaces glob patterns with the names they match. Patterns
// that match nothing, or do not compile, are kept as written.
func expandPatterns(patterns, names []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			add(pattern)
			continue
		}
		matched := false
		for _, name := range names {
			if g.Match(name) {
				add(name)
				matched = true
			}
		}
		if !matched {
			add(pattern)
		}
	}
	sort.Strings(out)
	return out
}

// prefixComposable inserts prefix after "use": useDisplay becomes useVDisplay.
func prefixComposable(name, prefix string) string {
	if prefix == "" {
		return name
	}
	rest, ok := strings.CutPrefix(name, "use")
	if !ok {
		return name
	}
	return "use" + prefix + rest
}
