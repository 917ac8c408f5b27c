package domain

import "strings"

// ParentTarget returns the target with its last dot-delimited segment removed.
// A target without a dot has no parent and yields an empty string.
func ParentTarget(target string) string {
	idx := strings.LastIndex(target, ".")
	if idx < 0 {
		return ""
	}
	return target[:idx]
}
