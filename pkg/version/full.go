package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Full is a three-component MAJOR.MINOR.PATCH version number.
//
// It is a subset of a semantic version: the pre-release and
// build-metadata labels are left out.
type Full struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// NewFull returns a three-component version with the given major, minor
// and patch components.
func NewFull(major, minor, patch uint64) Full {
	return Full{Major: major, Minor: minor, Patch: patch}
}

// String returns the version as "major.minor.patch".
func (f Full) String() string {
	return fmt.Sprintf("%d.%d.%d", f.Major, f.Minor, f.Patch)
}

// ToBase converts to a two-component version. The conversion is lossy:
// the patch component is discarded.
func (f Full) ToBase() Base {
	return Base{Major: f.Major, Minor: f.Minor}
}

// Semver converts to a semver.Version with empty pre-release and
// build-metadata labels, for callers that need to evaluate semver
// constraint expressions against a parsed version.
func (f Full) Semver() *semver.Version {
	return semver.New(f.Major, f.Minor, f.Patch, "", "")
}
