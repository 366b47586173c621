package module

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// VersionConstraint restricts acceptable host versions, either to one major
// version ("N.x") or to a minimum (">=X.Y.Z").
type VersionConstraint struct {
	MajorVersion int
	Minimum      string
}

// ParseVersionConstraint parses "N.x" or ">=X.Y.Z".
func ParseVersionConstraint(s string) (*VersionConstraint, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("version constraint string is empty")
	}

	if rest, ok := strings.CutPrefix(trimmed, ">="); ok {
		minimum := canonical(strings.TrimSpace(rest))
		if minimum == "" {
			return nil, fmt.Errorf("invalid minimum version in constraint '%s'", s)
		}
		return &VersionConstraint{MajorVersion: -1, Minimum: minimum}, nil
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 2 || parts[1] != "x" {
		return nil, fmt.Errorf("invalid version constraint '%s' (expected format: N.x or >=X.Y.Z)", s)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid major version in constraint '%s'", s)
	}
	if major < 0 {
		return nil, fmt.Errorf("major version must be non-negative in constraint '%s'", s)
	}

	return &VersionConstraint{MajorVersion: major}, nil
}

// MustParseVersionConstraint panics if the constraint cannot be parsed.
func MustParseVersionConstraint(s string) *VersionConstraint {
	vc, err := ParseVersionConstraint(s)
	if err != nil {
		panic(err)
	}
	return vc
}

// Satisfies determines whether the provided semantic version satisfies the constraint.
func (vc *VersionConstraint) Satisfies(version string) bool {
	if vc == nil {
		return true
	}
	v := canonical(version)
	if v == "" {
		return false
	}
	if vc.Minimum != "" {
		return semver.Compare(v, vc.Minimum) >= 0
	}
	return semver.Major(v) == fmt.Sprintf("v%d", vc.MajorVersion)
}

// String returns the canonical representation of the constraint.
func (vc *VersionConstraint) String() string {
	if vc == nil {
		return ""
	}
	if vc.Minimum != "" {
		return ">=" + strings.TrimPrefix(vc.Minimum, "v")
	}
	return fmt.Sprintf("%d.x", vc.MajorVersion)
}

// canonical returns the semver form of version ("4.1" becomes "v4.1.0"), or "" if invalid.
func canonical(version string) string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "v") {
		trimmed = "v" + trimmed
	}
	if !semver.IsValid(trimmed) {
		return ""
	}
	return semver.Canonical(trimmed)
}
