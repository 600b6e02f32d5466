// Package version implements strict parsing of two-component MAJOR.MINOR
// and three-component MAJOR.MINOR.PATCH version numbers.
//
// The grammar is a deliberately small subset of semver: components are
// unsigned 64-bit integers, a component must be 0 or start with a digit
// 1-9, and pre-release or build-metadata labels are never accepted. Both
// "1.0" and "1.0.0" parse, which plain semver rejects for the former.
//
// Parsing is available in two forms that agree on every input: the
// one-shot Parse function, and the incremental Parser for callers that
// want to inspect or branch mid-parse. Failures are reported as a
// *ParseError carrying a closed Reason, the offending byte offset, and a
// caret annotation for terminal display.
package version

import "fmt"

// Version is a parsed version number holding either two or three
// components. Use FromBase and FromFull to construct one, and Patch or
// IsFull to tell the two shapes apart.
type Version struct {
	major uint64
	minor uint64
	patch uint64
	full  bool
}

// FromBase wraps a two-component version.
func FromBase(b Base) Version {
	return Version{major: b.Major, minor: b.Minor}
}

// FromFull wraps a three-component version.
func FromFull(f Full) Version {
	return Version{major: f.Major, minor: f.Minor, patch: f.Patch, full: true}
}

// Major returns the leading component. Both shapes have one.
func (v Version) Major() uint64 {
	return v.major
}

// Minor returns the middle component. Both shapes have one.
func (v Version) Minor() uint64 {
	return v.minor
}

// Patch returns the patch component and true for a three-component
// version, or 0 and false for a two-component version.
func (v Version) Patch() (uint64, bool) {
	return v.patch, v.full
}

// IsFull reports whether the version has a patch component.
func (v Version) IsFull() bool {
	return v.full
}

// Base returns the major and minor components. For a three-component
// version the patch component is discarded.
func (v Version) Base() Base {
	return Base{Major: v.major, Minor: v.minor}
}

// Full returns all three components. For a two-component version the
// patch component is 0.
func (v Version) Full() Full {
	return Full{Major: v.major, Minor: v.minor, Patch: v.patch}
}

// Equal reports whether two versions have the same shape and the same
// components. A two-component 1.2 is not equal to a three-component
// 1.2.0; use Compare for ordering that treats a missing patch as 0.
func (v Version) Equal(o Version) bool {
	return v == o
}

// String returns "major.minor" or "major.minor.patch" depending on the
// shape.
func (v Version) String() string {
	if v.full {
		return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	}
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}
