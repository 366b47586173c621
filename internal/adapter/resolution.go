package adapter

import "slices"

// Kind is the family of a symbolic selection.
type Kind string

const (
	KindIcon      Kind = "icon"
	KindDate      Kind = "date"
	KindBlueprint Kind = "blueprint"
	KindAlias     Kind = "alias"
)

// Reason explains why a name stayed unresolved.
type Reason string

const (
	ReasonUserManaged       Reason = "user-managed"
	ReasonMissingDependency Reason = "missing optional dependency"
	ReasonUnknown           Reason = "unknown adapter"
	ReasonNotFound          Reason = "component not found"
)

// Resolution is the outcome of binding one symbolic name. It is either resolved,
// with Implementation set, or unresolved, with Reason (and possibly Install) set.
type Resolution struct {
	Kind           Kind
	Name           string
	Implementation any
	Reason         Reason
	Install        []string
	Err            error
}

// Resolved reports whether an implementation was bound.
func (r Resolution) Resolved() bool {
	return r.Reason == ""
}

func resolved(kind Kind, name string, impl any) Resolution {
	return Resolution{Kind: kind, Name: name, Implementation: impl}
}

func unresolved(kind Kind, name string, reason Reason, install []string, err error) Resolution {
	return Resolution{
		Kind:    kind,
		Name:    name,
		Reason:  reason,
		Install: slices.Clone(install),
		Err:     err,
	}
}
