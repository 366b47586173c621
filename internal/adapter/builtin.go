package adapter

import (
	"context"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
)

// IconConfig is the icon section handed to the UI library.
type IconConfig struct {
	DefaultSet string `json:"defaultSet,omitempty"`
}

// DateAdapter names the date adapter the UI library instantiates, with the
// packages that back it.
type DateAdapter struct {
	Name    string   `json:"name"`
	Modules []Module `json:"modules,omitempty"`
}

// DefaultTable returns a table holding every built-in icon set, date adapter and blueprint.
func DefaultTable() *Table {
	t := NewTable()
	mustRegister(t, iconCapabilities()...)
	mustRegister(t, dateCapabilities()...)
	mustRegister(t, blueprintCapabilities()...)
	return t
}

func iconCapabilities() []Capability {
	withSet := func(set string) LoadFunc {
		return static(func() any { return IconConfig{DefaultSet: set} })
	}
	empty := static(func() any { return IconConfig{} })

	caps := []Capability{
		{Kind: KindIcon, Name: string(config.IconMDI), Load: withSet("mdi")},
		{Kind: KindIcon, Name: string(config.IconMDISVG), Load: withSet("mdi")},
		{Kind: KindIcon, Name: string(config.IconFA), Load: withSet("fa")},
		{Kind: KindIcon, Name: string(config.IconNone), Load: empty},
	}
	// Recognised sets the library picks up without configuration.
	for _, set := range []config.IconSet{config.IconFA4, config.IconFASVG, config.IconMD, config.IconCustom} {
		caps = append(caps, Capability{Kind: KindIcon, Name: string(set), Load: empty})
	}
	return caps
}

func dateCapabilities() []Capability {
	external := func(name string, requires ...string) Capability {
		return Capability{
			Kind:     KindDate,
			Name:     name,
			Requires: requires,
			Load: func(ctx context.Context, loader Loader) (any, error) {
				modules := make([]Module, 0, len(requires))
				for _, pkg := range requires {
					m, err := loader.Load(ctx, pkg)
					if err != nil {
						return nil, err
					}
					modules = append(modules, m)
				}
				return DateAdapter{Name: name, Modules: modules}, nil
			},
		}
	}

	return []Capability{
		{
			Kind: KindDate,
			Name: config.DateVuetify,
			Load: static(func() any { return DateAdapter{Name: config.DateVuetify} }),
		},
		external(config.DateFns, "date-fns", "@date-io/date-fns"),
		external(config.DateDayjs, "dayjs", "@date-io/dayjs"),
		external(config.DateLuxon, "luxon", "@date-io/luxon"),
		external(config.DateMoment, "moment", "@date-io/moment"),
		external(config.DateJsJoda, "@js-joda/core", "@date-io/js-joda"),
		{Kind: KindDate, Name: config.DateCustom, UserManaged: true},
	}
}

func blueprintCapabilities() []Capability {
	return []Capability{
		{Kind: KindBlueprint, Name: config.BlueprintMD1, Load: static(func() any { return md1() })},
		{Kind: KindBlueprint, Name: config.BlueprintMD2, Load: static(func() any { return md2() })},
		{Kind: KindBlueprint, Name: config.BlueprintMD3, Load: static(func() any { return md3() })},
	}
}
