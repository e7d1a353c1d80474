// Package version parses and compares GridDyn native API versions.
//
// The C library reports its version as "major.minor" or
// "major.minor.patch", optionally followed by a pre-release or build
// label ("0.6.0-beta", "0.6.0 (2017-09-15)"). The status table is generated
// against one API version and is usable with any library whose version is
// compatible with it.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/griddyn/griddyn-go/pkg/status"
)

// APIVersion represents a parsed native API version.
type APIVersion struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses a "major.minor" or "major.minor.patch" version string.
// Anything after the first '-', '+' or space is ignored.
func Parse(s string) (APIVersion, error) {
	core := strings.TrimSpace(s)
	if i := strings.IndexAny(core, "-+ "); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return APIVersion{}, fmt.Errorf("invalid version %q: expected major.minor[.patch]", s)
	}

	var nums [3]uint16
	labels := [3]string{"major", "minor", "patch"}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || p == "" {
			return APIVersion{}, fmt.Errorf("invalid version %q: bad %s component", s, labels[i])
		}
		nums[i] = uint16(n)
	}

	return APIVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) APIVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Binding returns the API version the status table was generated against.
func Binding() APIVersion {
	return MustParse(status.NativeABI)
}

// String returns the version as "major.minor" or "major.minor.patch" when
// the patch component is set.
func (v APIVersion) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
// Pre-1.0 releases may change the ABI on any minor bump, so for major 0 the
// minor versions must match as well.
func (v APIVersion) Compatible(other APIVersion) bool {
	if v.Major != other.Major {
		return false
	}
	if v.Major == 0 {
		return v.Minor == other.Minor
	}
	return true
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after other.
func (v APIVersion) Compare(other APIVersion) int {
	switch {
	case v.Major != other.Major:
		return cmpUint16(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint16(v.Minor, other.Minor)
	default:
		return cmpUint16(v.Patch, other.Patch)
	}
}

// Satisfies reports whether a library at version v can serve a binding
// generated against required: compatible, and not older.
func (v APIVersion) Satisfies(required APIVersion) bool {
	return v.Compatible(required) && v.Compare(required) >= 0
}

func cmpUint16(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
