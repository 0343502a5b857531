package scada

import (
	"fmt"
	"strconv"
)

// OSVersion is the major/minor version of the running operating system.
type OSVersion struct {
	Major uint32
	Minor uint32
}

// DefaultOSVersion is used when every version source fails.
// It is Windows 7, the oldest release the software supports.
var DefaultOSVersion = OSVersion{Major: 6, Minor: 1}

// LegacyBaseline is the newest version allowed to run without the dev flag.
var LegacyBaseline = OSVersion{Major: 6, Minor: 1}

func (v OSVersion) String() string {
	return strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// NewerThan reports whether v is strictly newer than other.
func (v OSVersion) NewerThan(other OSVersion) bool {
	return v.Major > other.Major || (v.Major == other.Major && v.Minor > other.Minor)
}

// Label returns the human-readable name of v.
func (v OSVersion) Label() string {
	return Label(v.Major, v.Minor)
}

type labelRule struct {
	match func(major, minor uint32) bool
	label func(major, minor uint32) string
}

func exactly(major, minor uint32) func(uint32, uint32) bool {
	return func(ma, mi uint32) bool { return ma == major && mi == minor }
}

func fixed(s string) func(uint32, uint32) string {
	return func(uint32, uint32) string { return s }
}

// labelRules is evaluated top-down, the first match wins.
// Known releases must stay ahead of the generic "newer than 6.1" rule.
var labelRules = []labelRule{
	{match: exactly(6, 2), label: fixed("Windows 8")},
	{match: exactly(6, 3), label: fixed("Windows 8.1")},
	{match: exactly(10, 0), label: fixed("Windows 10/11")},
	{
		match: func(major, minor uint32) bool {
			return OSVersion{Major: major, Minor: minor}.NewerThan(LegacyBaseline)
		},
		label: func(major, minor uint32) string {
			return fmt.Sprintf("Windows %d.%d", major, minor)
		},
	},
	{match: func(uint32, uint32) bool { return true }, label: fixed("Windows 7")},
}

// Label maps a Windows major/minor pair to its display name.
//
// Anything at or below 6.1 is reported as "Windows 7", including releases
// older than Windows 7.
func Label(major, minor uint32) string {
	for _, r := range labelRules {
		if r.match(major, minor) {
			return r.label(major, minor)
		}
	}
	return "Windows 7"
}
