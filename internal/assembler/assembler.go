// Package assembler turns a runtime configuration into the UI library
// initialization payload for one execution context.
package assembler

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/adapter"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/theme"
)

// Assembler builds payloads. Client and server share one Assembler so both
// resolve names through the same table.
type Assembler struct {
	resolver *adapter.Resolver
	log      *logger.Logger
}

// New returns an assembler. A nil resolver uses the built-in table with no
// optional packages installed.
func New(resolver *adapter.Resolver, log *logger.Logger) *Assembler {
	if resolver == nil {
		resolver = adapter.NewResolver(nil, nil, nil)
	}
	return &Assembler{resolver: resolver, log: log}
}

// Assemble builds the payload for execCtx. It never fails: every name that
// cannot be bound is left out of the payload, logged, and returned in the
// unresolved list. Each load is attempted once.
func (a *Assembler) Assemble(ctx context.Context, rc config.RuntimeConfig, execCtx Context) (Payload, []adapter.Resolution) {
	rc = config.CloneRuntimeConfig(rc)

	var unresolved []adapter.Resolution
	miss := func(res adapter.Resolution) {
		unresolved = append(unresolved, res)
		a.report(execCtx, res)
	}

	defaultTheme := rc.DefaultTheme
	if defaultTheme == "" {
		defaultTheme = config.ThemeLight
	}

	payload := Payload{
		SSR: rc.SSR || execCtx == Server,
		Theme: ThemeConfig{
			DefaultTheme: defaultTheme,
			Themes:       theme.ComposeBuiltin(rc.Themes),
		},
		Defaults:    rc.Defaults,
		Directives:  Directives(),
		Locale:      localeConfig(rc.Locale),
		GoTo:        rc.GoTo,
		Display:     rc.Display,
		Persistence: rc.Persistence,
	}
	if payload.Defaults == nil {
		payload.Defaults = map[string]any{}
	}

	icons := rc.Icons
	if icons == "" {
		icons = config.IconNone
	}
	if res := a.resolver.Resolve(ctx, adapter.KindIcon, string(icons)); res.Resolved() {
		payload.Icons, _ = res.Implementation.(adapter.IconConfig)
	} else {
		miss(res)
	}

	if rc.Date != nil && rc.Date.Adapter != "" {
		res := a.resolver.Resolve(ctx, adapter.KindDate, rc.Date.Adapter)
		if impl, ok := res.Implementation.(adapter.DateAdapter); ok && res.Resolved() {
			payload.Date = &DateConfig{
				Adapter: impl,
				Locale:  nonEmpty(rc.Date.Locale),
				Formats: nonEmpty(rc.Date.Formats),
			}
		} else {
			miss(res)
		}
	}

	if len(rc.Aliases) > 0 {
		found, misses := a.resolver.ResolveAliases(ctx, rc.Aliases)
		for _, res := range misses {
			miss(res)
		}
		if len(found) > 0 {
			payload.Aliases = found
		}
	}

	if bp := rc.Blueprint; bp != nil && !bp.IsZero() {
		if bp.Inline != nil {
			payload.Blueprint = bp.Inline
		} else if res := a.resolver.Resolve(ctx, adapter.KindBlueprint, bp.Name); res.Resolved() {
			payload.Blueprint = res.Implementation
		} else {
			miss(res)
		}
	}

	return payload, unresolved
}

func (a *Assembler) report(execCtx Context, res adapter.Resolution) {
	fields := map[string]any{
		"context": string(execCtx),
		"kind":    string(res.Kind),
		"name":    res.Name,
		"reason":  string(res.Reason),
	}
	if len(res.Install) > 0 {
		fields["install"] = "npm install " + strings.Join(res.Install, " ")
	}

	msg := string(res.Reason)
	if res.Err != nil {
		msg = res.Err.Error()
	}

	log := a.log.WithFields(fields)
	if res.Reason == adapter.ReasonUserManaged {
		log.Debug(msg)
		return
	}
	log.Warn(msg)
}

func localeConfig(l *config.Locale) *LocaleConfig {
	if l == nil {
		return nil
	}
	out := LocaleConfig{
		Locale:   l.Locale,
		Fallback: l.Fallback,
	}
	if len(l.Messages) > 0 {
		out.Messages = l.Messages
	}
	if len(l.RTL) > 0 {
		out.RTL = l.RTL
	}
	if out.Locale == "" && out.Fallback == "" && out.Messages == nil && out.RTL == nil {
		return nil
	}
	return &out
}

func nonEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return m
}
