// Package semver compares dotted version strings tolerantly.
package semver

import (
	"strconv"
	"strings"
)

// Compare compares two dotted version strings component-wise over the first
// three components (major, minor, patch). It returns -1 if a < b, 0 if
// a == b, and 1 if a > b.
//
// Version strings come from an external, independently-versioned tool and
// cannot be trusted to be well-formed: missing or non-numeric components
// degrade to 0 instead of failing, so a malformed version never blocks the
// resolution pipeline.
func Compare(a string, b string) int {
	aParts := parse(a)
	bParts := parse(b)
	for i := 0; i < len(aParts); i++ {
		if aParts[i] < bParts[i] {
			return -1
		}
		if aParts[i] > bParts[i] {
			return 1
		}
	}
	return 0
}

// parse converts a version string into three numeric components.
// Missing or malformed segments become 0.
func parse(raw string) [3]int {
	var out [3]int
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if raw == "" {
		return out
	}
	parts := strings.Split(raw, ".")
	for i := 0; i < len(out) && i < len(parts); i++ {
		// Strip any pre-release or build suffix from the segment (e.g. "3-rc1").
		segment := parts[i]
		if idx := strings.IndexFunc(segment, func(r rune) bool { return r < '0' || r > '9' }); idx >= 0 {
			segment = segment[:idx]
		}
		value, err := strconv.Atoi(segment)
		if err != nil {
			continue
		}
		out[i] = value
	}
	return out
}
