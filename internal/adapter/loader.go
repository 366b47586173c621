package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotInstalled is returned by a Loader when the package is absent.
var ErrNotInstalled = errors.New("package not installed")

// Module is an installed optional dependency.
type Module struct {
	Package string `json:"package"`
	Version string `json:"version,omitempty"`
	Dir     string `json:"-"`
}

// Loader attempts to acquire an optional dependency by package name.
type Loader interface {
	Load(ctx context.Context, pkg string) (Module, error)
}

// NodeModulesLoader finds packages in <Root>/node_modules.
type NodeModulesLoader struct {
	Root string
}

type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Load reads the package manifest of pkg.
func (l NodeModulesLoader) Load(ctx context.Context, pkg string) (Module, error) {
	if err := ctx.Err(); err != nil {
		return Module{}, err
	}
	if !validPackageName(pkg) {
		return Module{}, fmt.Errorf("invalid package name %q", pkg)
	}

	dir := filepath.Join(l.Root, "node_modules", filepath.FromSlash(pkg))
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Module{}, fmt.Errorf("%s: %w", pkg, ErrNotInstalled)
		}
		return Module{}, fmt.Errorf("read %s manifest: %w", pkg, err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Module{}, fmt.Errorf("decode %s manifest: %w", pkg, err)
	}
	if manifest.Name != "" && manifest.Name != pkg {
		return Module{}, fmt.Errorf("%s: manifest names %q", pkg, manifest.Name)
	}
	return Module{Package: pkg, Version: manifest.Version, Dir: dir}, nil
}

// validPackageName accepts `name` and `@scope/name` without path tricks.
func validPackageName(pkg string) bool {
	parts := strings.Split(pkg, "/")
	switch {
	case len(parts) == 1:
	case len(parts) == 2 && strings.HasPrefix(parts[0], "@") && len(parts[0]) > 1:
	default:
		return false
	}
	for _, part := range parts {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `\`) {
			return false
		}
	}
	return true
}

// StaticLoader serves packages registered in memory. It is safe for concurrent use.
type StaticLoader struct {
	mu       sync.RWMutex
	modules  map[string]Module
	failures map[string]error
}

// NewStaticLoader returns a loader that knows the given packages.
func NewStaticLoader(modules ...Module) *StaticLoader {
	l := &StaticLoader{
		modules:  make(map[string]Module, len(modules)),
		failures: make(map[string]error),
	}
	for _, m := range modules {
		l.modules[m.Package] = m
	}
	return l
}

// Add registers a package.
func (l *StaticLoader) Add(m Module) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.modules[m.Package] = m
	delete(l.failures, m.Package)
}

// Fail makes every load of pkg return err.
func (l *StaticLoader) Fail(pkg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[pkg] = err
}

// Load returns the registered package or ErrNotInstalled.
func (l *StaticLoader) Load(ctx context.Context, pkg string) (Module, error) {
	if err := ctx.Err(); err != nil {
		return Module{}, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if err, ok := l.failures[pkg]; ok {
		return Module{}, err
	}
	m, ok := l.modules[pkg]
	if !ok {
		return Module{}, fmt.Errorf("%s: %w", pkg, ErrNotInstalled)
	}
	return m, nil
}

// CountingLoader records how many times each package is requested.
type CountingLoader struct {
	Loader Loader

	mu    sync.Mutex
	calls map[string]int
}

// Load forwards to the wrapped loader.
func (c *CountingLoader) Load(ctx context.Context, pkg string) (Module, error) {
	c.mu.Lock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[pkg]++
	c.mu.Unlock()
	return c.Loader.Load(ctx, pkg)
}

// Calls returns how many times pkg was requested.
func (c *CountingLoader) Calls(pkg string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[pkg]
}
