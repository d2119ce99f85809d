// Package strings cleans up free-text input: request fields and the
// feature lists collected for places.
package strings

import (
	"strings"
	"unicode"
)

// TrimSpace trims every referenced string in place. Nil pointers are skipped.
func TrimSpace(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// DedupeAndTrim trims each value and drops blanks and repeats, keeping
// first-seen order. A nil or empty slice is returned as is.
//
//	DedupeAndTrim([]string{" 천체관 ", "주차장", "천체관", "", "  "})
//	// []string{"천체관", "주차장"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SnakeCase converts a Go field name to the snake_case key used in JSON
// bodies, keeping acronyms together: PlaceID -> place_id.
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
