// Package runtime provides the client and server plugins that create the UI
// library instance from the runtime configuration.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/assembler"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/logger"
)

// ProvideKey is the key the instance is provided under.
const ProvideKey = config.ModuleKey

// Instance is whatever the UI library factory returns.
type Instance any

// Factory creates the UI library instance from a payload.
type Factory interface {
	Create(ctx context.Context, payload assembler.Payload) (Instance, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(ctx context.Context, payload assembler.Payload) (Instance, error)

// Create calls f.
func (f FactoryFunc) Create(ctx context.Context, payload assembler.Payload) (Instance, error) {
	return f(ctx, payload)
}

// PayloadFactory returns the payload itself as the instance.
var PayloadFactory = FactoryFunc(func(_ context.Context, payload assembler.Payload) (Instance, error) {
	return payload, nil
})

// App is the host application the instance is installed into.
type App interface {
	Use(instance Instance)
	Provide(key string, value any)
}

// Options configures a plugin.
type Options struct {
	Assembler *assembler.Assembler
	Factory   Factory
	Hooks     *Hooks
	Logger    *logger.Logger
	Dev       bool
}

// Plugin installs the UI library for one execution context.
type Plugin struct {
	execCtx   assembler.Context
	assembler *assembler.Assembler
	factory   Factory
	hooks     *Hooks
	log       *logger.Logger
	dev       bool
}

// NewClientPlugin returns the plugin run in the browser.
func NewClientPlugin(opts Options) *Plugin {
	return newPlugin(assembler.Client, opts)
}

// NewServerPlugin returns the plugin run while rendering on the server.
func NewServerPlugin(opts Options) *Plugin {
	return newPlugin(assembler.Server, opts)
}

func newPlugin(execCtx assembler.Context, opts Options) *Plugin {
	asm := opts.Assembler
	if asm == nil {
		asm = assembler.New(nil, opts.Logger)
	}
	factory := opts.Factory
	if factory == nil {
		factory = PayloadFactory
	}
	return &Plugin{
		execCtx:   execCtx,
		assembler: asm,
		factory:   factory,
		hooks:     opts.Hooks,
		log:       opts.Logger.WithFields(map[string]any{"plugin": string(execCtx)}),
		dev:       opts.Dev,
	}
}

// Name is the plugin file name the host registers.
func (p *Plugin) Name() string {
	return config.ModuleKey + "." + string(p.execCtx)
}

// Context is the execution context the plugin assembles for.
func (p *Plugin) Context() assembler.Context {
	return p.execCtx
}

// Setup assembles the payload, runs the configuration hooks, creates the
// instance, installs it into app and runs the ready hooks. Unresolved names
// never fail Setup; only hook and factory errors do.
func (p *Plugin) Setup(ctx context.Context, app App, rc config.RuntimeConfig) (Instance, error) {
	if app == nil {
		return nil, errors.New("runtime plugin requires an app")
	}

	payload, unresolved := p.assembler.Assemble(ctx, rc, p.execCtx)
	if len(unresolved) > 0 {
		p.log.Debug(fmt.Sprintf("%d optional features left out", len(unresolved)))
	}

	opts := HookOptions{IsDev: p.dev, Context: p.execCtx, Payload: &payload}
	if err := p.hooks.callOptions(ctx, HookConfiguration, opts); err != nil {
		return nil, err
	}
	if err := p.hooks.callOptions(ctx, HookBeforeCreate, opts); err != nil {
		return nil, err
	}

	instance, err := p.factory.Create(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create %s instance: %w", p.execCtx, err)
	}

	app.Use(instance)
	app.Provide(ProvideKey, instance)

	if err := p.hooks.callReady(ctx, instance); err != nil {
		return nil, err
	}
	p.log.Debug("instance ready")
	return instance, nil
}

// MemoryApp records what plugins install. It is safe for concurrent use.
type MemoryApp struct {
	mu       sync.Mutex
	used     []Instance
	provided map[string]any
}

// NewMemoryApp returns an empty MemoryApp.
func NewMemoryApp() *MemoryApp {
	return &MemoryApp{provided: make(map[string]any)}
}

// Use records instance.
func (a *MemoryApp) Use(instance Instance) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.used = append(a.used, instance)
}

// Provide records value under key.
func (a *MemoryApp) Provide(key string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.provided[key] = value
}

// Used returns the installed instances in order.
func (a *MemoryApp) Used() []Instance {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Instance(nil), a.used...)
}

// Provided returns the value provided under key.
func (a *MemoryApp) Provided(key string) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.provided[key]
	return v, ok
}
