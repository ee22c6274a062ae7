package library

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/teranos/girgen/errors"
)

// Version is a library version such as "3.4" or "2.56.1".
type Version struct {
	raw string
	sv  *semver.Version
}

// ParseVersion parses a dotted version. Missing minor or patch components
// are treated as zero.
func ParseVersion(s string) (*Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "invalid version %q: %v", s, err)
	}
	return &Version{raw: s, sv: sv}, nil
}

// MustParseVersion is ParseVersion for literals known to be valid.
func MustParseVersion(s string) *Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as written in the source data.
func (v *Version) String() string {
	return v.raw
}

// FeatureName returns the cargo feature gating this version: "v3_4",
// or "v2_56_1" when the patch component is set.
func (v *Version) FeatureName() string {
	if v.sv.Patch() != 0 {
		return fmt.Sprintf("v%d_%d_%d", v.sv.Major(), v.sv.Minor(), v.sv.Patch())
	}
	return fmt.Sprintf("v%d_%d", v.sv.Major(), v.sv.Minor())
}

// NewerThan reports whether v is strictly greater than other.
// A nil other means "no baseline" and every version is newer.
func (v *Version) NewerThan(other *Version) bool {
	if other == nil {
		return true
	}
	return v.sv.GreaterThan(other.sv)
}
