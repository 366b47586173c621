package runtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/nuxtvuetify/internal/assembler"
)

// Runtime hook names.
const (
	HookConfiguration = "vuetify:configuration"
	HookBeforeCreate  = "vuetify:before-create"
	HookReady         = "vuetify:ready"
)

// HookOptions is passed to configuration hooks. Hooks may edit Payload.
type HookOptions struct {
	IsDev   bool
	Context assembler.Context
	Payload *assembler.Payload
}

// OptionsHook runs before the instance is created.
type OptionsHook func(ctx context.Context, opts HookOptions) error

// ReadyHook runs once the instance exists.
type ReadyHook func(ctx context.Context, instance Instance) error

// Hooks holds runtime hook handlers in registration order. It is safe for concurrent use.
type Hooks struct {
	mu      sync.RWMutex
	options map[string][]OptionsHook
	ready   []ReadyHook
}

// NewHooks returns an empty hook set.
func NewHooks() *Hooks {
	return &Hooks{options: make(map[string][]OptionsHook)}
}

// OnConfiguration registers a vuetify:configuration handler.
func (h *Hooks) OnConfiguration(fn OptionsHook) {
	h.addOptions(HookConfiguration, fn)
}

// OnBeforeCreate registers a vuetify:before-create handler.
func (h *Hooks) OnBeforeCreate(fn OptionsHook) {
	h.addOptions(HookBeforeCreate, fn)
}

// OnReady registers a vuetify:ready handler.
func (h *Hooks) OnReady(fn ReadyHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ready = append(h.ready, fn)
}

func (h *Hooks) addOptions(name string, fn OptionsHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.options[name] = append(h.options[name], fn)
}

func (h *Hooks) callOptions(ctx context.Context, name string, opts HookOptions) error {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	handlers := append([]OptionsHook(nil), h.options[name]...)
	h.mu.RUnlock()

	for i, fn := range handlers {
		if err := fn(ctx, opts); err != nil {
			return fmt.Errorf("%s hook %d: %w", name, i, err)
		}
	}
	return nil
}

func (h *Hooks) callReady(ctx context.Context, instance Instance) error {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	handlers := append([]ReadyHook(nil), h.ready...)
	h.mu.RUnlock()

	for i, fn := range handlers {
		if err := fn(ctx, instance); err != nil {
			return fmt.Errorf("%s hook %d: %w", HookReady, i, err)
		}
	}
	return nil
}
