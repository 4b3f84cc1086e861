// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a packed Vulkan version number. Bits 29-31 hold the variant,
// 22-28 the major, 12-21 the minor and 0-11 the patch number.
type Version uint32

// MakeVersion packs a version with variant 0.
func MakeVersion(major, minor, patch uint32) Version {
	return MakeAPIVersion(0, major, minor, patch)
}

// MakeAPIVersion packs a version including its variant.
func MakeAPIVersion(variant, major, minor, patch uint32) Version {
	return Version(variant<<29 | (major&0x7f)<<22 | (minor&0x3ff)<<12 | patch&0xfff)
}

// ParseVersion reads "major.minor" or "major.minor.patch".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid version %q: expected major.minor[.patch]", s)
	}
	var nums [3]uint32
	limits := [3]uint64{0x7f, 0x3ff, 0xfff}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid version %q: %w", s, err)
		}
		if n > limits[i] {
			return 0, fmt.Errorf("invalid version %q: component %d out of range", s, n)
		}
		nums[i] = uint32(n)
	}
	return MakeVersion(nums[0], nums[1], nums[2]), nil
}

// Variant returns the variant number.
func (v Version) Variant() uint32 { return uint32(v) >> 29 }

// Major returns the major version number.
func (v Version) Major() uint32 { return uint32(v) >> 22 & 0x7f }

// Minor returns the minor version number.
func (v Version) Minor() uint32 { return uint32(v) >> 12 & 0x3ff }

// Patch returns the patch version number.
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// MarshalText implements encoding.TextMarshaler
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
