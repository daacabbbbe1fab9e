// Package version normalizes release version strings.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// IsDev reports whether raw identifies an unreleased development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}

// Normalize strips an optional leading "v" and validates that the result is
// a three-component numeric version. It returns the canonical X.Y.Z form.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "v")
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("expected X.Y.Z, got %q", raw)
	}
	nums := make([]string, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 {
			return "", fmt.Errorf("invalid version segment %q", part)
		}
		nums = append(nums, strconv.Itoa(value))
	}
	return strings.Join(nums, "."), nil
}
