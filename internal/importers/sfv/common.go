package sfv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	unsupportedIDChars = regexp.MustCompile(`[^a-z0-9\s.-]`)
	idSeparators       = regexp.MustCompile(`[\s.]`)
	repeatedDashes     = regexp.MustCompile(`-+`)
	wordRuns           = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

// sanitizeForID converts a display name into a target id segment.
func sanitizeForID(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = unsupportedIDChars.ReplaceAllString(s, "")
	s = idSeparators.ReplaceAllString(s, "-")
	return repeatedDashes.ReplaceAllString(s, "-")
}

// capitalize upper-cases the first character of every alphanumeric run.
func capitalize(input string) string {
	b := []byte(input)
	for _, loc := range wordRuns.FindAllIndex(b, -1) {
		c := b[loc[0]]
		if c >= 'a' && c <= 'z' {
			b[loc[0]] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// statString converts a decoded source value to its display string.
// The second return value is false for nil and unsupported values.
func statString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return "", false
	}
}
