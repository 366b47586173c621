package adapter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
)

// ErrDuplicateCapability is returned when a kind and name pair is registered twice.
var ErrDuplicateCapability = errors.New("capability already registered")

// LoadFunc produces the implementation of a capability. It may use loader to
// acquire optional dependencies and must return a fresh value on every call.
type LoadFunc func(ctx context.Context, loader Loader) (any, error)

// Capability binds one symbolic token of a kind to the way it is loaded.
type Capability struct {
	Kind Kind
	Name string
	// Requires lists the packages a user installs to make Load succeed.
	Requires []string
	// UserManaged capabilities are never loaded: the application binds them itself.
	UserManaged bool
	Load        LoadFunc
}

// Table is the closed set of capabilities the resolver may bind.
type Table struct {
	mu      sync.RWMutex
	entries map[Kind]map[string]Capability
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[Kind]map[string]Capability)}
}

// Register adds a capability.
func (t *Table) Register(c Capability) error {
	if c.Kind == "" || c.Name == "" {
		return fmt.Errorf("capability requires a kind and a name")
	}
	if c.Load == nil && !c.UserManaged {
		return fmt.Errorf("capability %s %q has no loader", c.Kind, c.Name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	byName := t.entries[c.Kind]
	if byName == nil {
		byName = make(map[string]Capability)
		t.entries[c.Kind] = byName
	}
	if _, exists := byName[c.Name]; exists {
		return fmt.Errorf("%s %q: %w", c.Kind, c.Name, ErrDuplicateCapability)
	}
	c.Requires = slices.Clone(c.Requires)
	byName[c.Name] = c
	return nil
}

// Lookup returns the capability registered for kind and name.
func (t *Table) Lookup(kind Kind, name string) (Capability, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c, ok := t.entries[kind][name]
	if !ok {
		return Capability{}, false
	}
	c.Requires = slices.Clone(c.Requires)
	return c, true
}

// Names returns the registered tokens of kind in sorted order.
func (t *Table) Names(kind Kind) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.entries[kind]))
	for name := range t.entries[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustRegister(t *Table, caps ...Capability) {
	for _, c := range caps {
		if err := t.Register(c); err != nil {
			panic(err)
		}
	}
}

// static returns a loader that needs no dependency.
func static(build func() any) LoadFunc {
	return func(context.Context, Loader) (any, error) {
		return build(), nil
	}
}
