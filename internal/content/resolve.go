package content

import "strings"

// Field resolution policy for partially authored records.
//
// Scalars: a value that is empty after trimming counts as absent and falls
// back to the default. This single rule is applied to every text field.
//
// Lists: fallback is list-granular. A list with at least one entry replaces
// the default list wholly; an empty or nil list yields the full default list.
// Partial-list merging is deliberately unsupported.

// Text returns v unless it is blank, in which case def is returned.
func Text(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// List returns v unless it is empty, in which case def is returned.
func List[T any](v, def []T) []T {
	if len(v) == 0 {
		return def
	}
	return v
}
