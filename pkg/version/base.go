package version

import "fmt"

// Base is a two-component MAJOR.MINOR version number.
//
// It is a subset of a semantic version: the PATCH component and the
// pre-release and build-metadata labels are left out. When the PATCH
// component matters, use Full instead.
type Base struct {
	Major uint64
	Minor uint64
}

// NewBase returns a two-component version with the given major and minor
// components.
func NewBase(major, minor uint64) Base {
	return Base{Major: major, Minor: minor}
}

// String returns the version as "major.minor".
func (b Base) String() string {
	return fmt.Sprintf("%d.%d", b.Major, b.Minor)
}

// ToFull converts to a three-component version. The conversion is lossy:
// the patch component is not known here and is initialized to 0.
func (b Base) ToFull() Full {
	return Full{Major: b.Major, Minor: b.Minor, Patch: 0}
}
