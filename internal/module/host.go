package module

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/config"
	"github.com/alexisbeaulieu97/nuxtvuetify/internal/runtime"
)

// I18nModule is the host module whose presence switches on locale integration.
const I18nModule = "@nuxtjs/i18n"

// HookRegisterModule lets other host modules contribute option layers.
const HookRegisterModule = "vuetify:registerModule"

// Host is the build system the module registers with.
type Host interface {
	Version() string
	// RootDir is the project directory optional packages are installed under.
	RootDir() string
	Dev() bool
	HasModule(name string) bool
	// RegisteredOptions returns the layers contributed through HookRegisterModule, in order.
	RegisteredOptions(ctx context.Context) ([]config.PartialOptions, error)
	SetRuntimeConfig(key string, rc config.RuntimeConfig)
	AddPlugin(p *runtime.Plugin)
	ApplyPlan(plan BuildPlan)
}

// RecordingHost is a Host that records every registration.
type RecordingHost struct {
	HostVersion string
	Root        string
	IsDev       bool
	Modules     []string
	Layers      []config.PartialOptions

	mu            sync.Mutex
	runtimeConfig map[string]config.RuntimeConfig
	plugins       []*runtime.Plugin
	plans         []BuildPlan
}

// Version returns HostVersion.
func (h *RecordingHost) Version() string { return h.HostVersion }

// RootDir returns Root.
func (h *RecordingHost) RootDir() string { return h.Root }

// Dev returns IsDev.
func (h *RecordingHost) Dev() bool { return h.IsDev }

// HasModule reports whether name is in Modules.
func (h *RecordingHost) HasModule(name string) bool {
	for _, m := range h.Modules {
		if m == name {
			return true
		}
	}
	return false
}

// RegisteredOptions returns Layers.
func (h *RecordingHost) RegisteredOptions(context.Context) ([]config.PartialOptions, error) {
	return h.Layers, nil
}

// SetRuntimeConfig records rc under key.
func (h *RecordingHost) SetRuntimeConfig(key string, rc config.RuntimeConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.runtimeConfig == nil {
		h.runtimeConfig = make(map[string]config.RuntimeConfig)
	}
	h.runtimeConfig[key] = rc
}

// AddPlugin records p.
func (h *RecordingHost) AddPlugin(p *runtime.Plugin) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.plugins = append(h.plugins, p)
}

// ApplyPlan records plan.
func (h *RecordingHost) ApplyPlan(plan BuildPlan) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.plans = append(h.plans, plan)
}

// RuntimeConfig returns the configuration published under key.
func (h *RecordingHost) RuntimeConfig(key string) (config.RuntimeConfig, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rc, ok := h.runtimeConfig[key]
	return rc, ok
}

// Plugins returns the registered plugins in order.
func (h *RecordingHost) Plugins() []*runtime.Plugin {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*runtime.Plugin(nil), h.plugins...)
}

// Plans returns the applied plans in order.
func (h *RecordingHost) Plans() []BuildPlan {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]BuildPlan(nil), h.plans...)
}
