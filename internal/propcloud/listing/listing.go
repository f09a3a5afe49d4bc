// Package listing filters dashboard lists by a status tab and a free text
// search.
package listing

import "strings"

// TabAll selects every row regardless of status.
const TabAll = "all"

// Rule describes how to read the filterable parts of a row.
type Rule[T any] struct {
	// Status returns the value the tab is compared against.
	Status func(T) string
	// Fields returns the values the search term is matched against.
	Fields func(T) []string
}

// Apply narrows items to the selected tab, then to rows where any search
// field contains search case-insensitively. Relative order is kept. An
// empty tab or TabAll selects every row; a blank search matches every row.
func Apply[T any](items []T, tab, search string, rule Rule[T]) []T {
	tab = strings.TrimSpace(tab)
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if tab != "" && tab != TabAll && rule.Status(item) != tab {
			continue
		}
		if term != "" && !matches(rule.Fields(item), term) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Deref returns *s or "" for nil, for building field lists from optional
// columns.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
