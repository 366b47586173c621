package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"

	nverrors "github.com/alexisbeaulieu97/nuxtvuetify/pkg/errors"
)

// Resolver binds symbolic names to implementations. It never returns an error:
// every failure is reported as an unresolved Resolution.
type Resolver struct {
	table   *Table
	loader  Loader
	catalog Catalog
}

// NewResolver builds a resolver. A nil table means DefaultTable, a nil loader
// knows no packages and a nil catalog is the built-in component list.
func NewResolver(table *Table, loader Loader, catalog Catalog) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if loader == nil {
		loader = NewStaticLoader()
	}
	if catalog == nil {
		catalog = NewStaticCatalog()
	}
	return &Resolver{table: table, loader: loader, catalog: catalog}
}

// Resolve looks name up in the capability table and loads it once.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, name string) (res Resolution) {
	capability, ok := r.table.Lookup(kind, name)
	if !ok {
		return failed(kind, name, ReasonUnknown, nil, nil)
	}
	if capability.UserManaged {
		return failed(kind, name, ReasonUserManaged, nil, nil)
	}

	defer func() {
		if p := recover(); p != nil {
			res = failed(kind, name, ReasonMissingDependency, capability.Requires, fmt.Errorf("load panicked: %v", p))
		}
	}()

	impl, err := capability.Load(ctx, r.loader)
	if err != nil {
		return failed(kind, name, ReasonMissingDependency, capability.Requires, err)
	}
	return resolved(kind, name, impl)
}

// ResolveAliases locates the target component of every alias. Aliases whose
// target cannot be found are left out of the result and reported as misses.
func (r *Resolver) ResolveAliases(ctx context.Context, aliases map[string]string) (map[string]Component, []Resolution) {
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	found := make(map[string]Component, len(aliases))
	var misses []Resolution
	for _, alias := range names {
		component, miss, ok := r.lookupAlias(ctx, alias, aliases[alias])
		if !ok {
			misses = append(misses, miss)
			continue
		}
		found[alias] = component
	}
	return found, misses
}

// lookupAlias finds the target of one alias. A catalog panic is folded into a miss.
func (r *Resolver) lookupAlias(ctx context.Context, alias, target string) (component Component, miss Resolution, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			component, ok = Component{}, false
			miss = failed(KindAlias, alias, ReasonNotFound, nil, fmt.Errorf("%q: %w: lookup panicked: %v", target, ErrComponentNotFound, p))
		}
	}()

	component, err := r.catalog.Lookup(ctx, target)
	if err != nil {
		if !errors.Is(err, ErrComponentNotFound) {
			err = fmt.Errorf("%w: %v", ErrComponentNotFound, err)
		}
		return Component{}, failed(KindAlias, alias, ReasonNotFound, nil, fmt.Errorf("%q: %w", target, err)), false
	}
	return component, Resolution{}, true
}

func failed(kind Kind, name string, reason Reason, install []string, cause error) Resolution {
	err := nverrors.NewResolutionError(string(kind), name, string(reason), install, cause)
	return unresolved(kind, name, reason, install, err)
}
