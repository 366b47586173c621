// Package module is the host-facing entry point: it describes the module,
// checks host compatibility, merges options and registers the runtime plugins
// and build plan.
package module

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/adapter"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/assembler"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/runtime"
)

const (
	// Version is the module version reported to the host.
	Version = "1.0.0"
	// Compatibility is the supported host version range.
	Compatibility = ">=4.0.0"
)

// ErrIncompatibleHost is returned when the host version is outside Compatibility.
var ErrIncompatibleHost = errors.New("incompatible host version")

// Descriptor is the module registration record.
type Descriptor struct {
	Name          string
	ConfigKey     string
	Version       string
	Compatibility *VersionConstraint
	Defaults      config.Options
}

// Describe returns the module descriptor.
func Describe() Descriptor {
	return Descriptor{
		Name:          config.ModuleName,
		ConfigKey:     config.ModuleKey,
		Version:       Version,
		Compatibility: MustParseVersionConstraint(Compatibility),
		Defaults:      config.Defaults(),
	}
}

// SetupOptions supplies the collaborators Setup wires into the plugins.
type SetupOptions struct {
	// Logger overrides the logger built from the merged logger options.
	Logger   *logger.Logger
	// Resolver defaults to the built-in table loading from the host's node_modules.
	Resolver *adapter.Resolver
	Factory  runtime.Factory
	Hooks    *runtime.Hooks
}

// Result is what Setup registered.
type Result struct {
	Options config.Options
	Runtime config.RuntimeConfig
	Plan    BuildPlan
	Plugins []*runtime.Plugin
	// Disabled is set when the merged options turn the module off.
	Disabled bool
}

// Setup merges defaults, the layers other modules registered and user, in that
// order, then publishes the runtime configuration, the build plan and the
// runtime plugins to host. The server plugin is only registered with SSR on.
func Setup(ctx context.Context, host Host, user config.PartialOptions, opts SetupOptions) (*Result, error) {
	desc := Describe()
	if !desc.Compatibility.Satisfies(host.Version()) {
		return nil, fmt.Errorf("%s requires host %s, got %q: %w", desc.Name, desc.Compatibility, host.Version(), ErrIncompatibleHost)
	}

	layers, err := host.RegisteredOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect %s layers: %w", HookRegisterModule, err)
	}
	merged := desc.Defaults
	for _, layer := range layers {
		merged = config.Merge(merged, layer)
	}
	merged = config.Merge(merged, user)

	log := opts.Logger
	if log == nil {
		log, err = moduleLogger(merged.Logger, host.Dev())
		if err != nil {
			return nil, err
		}
	}
	if len(user.Ignored) > 0 {
		log.WithFields(map[string]any{"keys": user.Ignored}).Warn("ignoring unrecognised or malformed options")
	}

	if !merged.Enabled {
		log.Info("module disabled")
		return &Result{Options: merged, Disabled: true}, nil
	}

	rc := config.ToRuntimeConfig(merged)
	host.SetRuntimeConfig(config.ModuleKey, rc)

	plan := Plan(merged, PlanOptions{
		I18n:       host.HasModule(I18nModule),
		Components: adapter.BuiltinComponents(),
		Logger:     log,
	})
	host.ApplyPlan(plan)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = adapter.NewResolver(nil, adapter.NodeModulesLoader{Root: host.RootDir()}, nil)
	}
	pluginOpts := runtime.Options{
		Assembler: assembler.New(resolver, log),
		Factory:   opts.Factory,
		Hooks:     opts.Hooks,
		Logger:    log,
		Dev:       host.Dev(),
	}
	plugins := []*runtime.Plugin{runtime.NewClientPlugin(pluginOpts)}
	if merged.SSR {
		plugins = append(plugins, runtime.NewServerPlugin(pluginOpts))
	}
	for _, p := range plugins {
		host.AddPlugin(p)
	}

	log.WithFields(map[string]any{"version": desc.Version, "plugins": len(plugins)}).Debug("module ready")
	return &Result{Options: merged, Runtime: rc, Plan: plan, Plugins: plugins}, nil
}

func moduleLogger(opts config.LoggerOptions, dev bool) (*logger.Logger, error) {
	level := opts.Level
	if level == "" {
		level = logger.LevelFor(dev)
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: dev, Tag: opts.Tag})
	if err != nil {
		return nil, fmt.Errorf("create module logger: %w", err)
	}
	return log, nil
}
