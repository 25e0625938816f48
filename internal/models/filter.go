package models

import (
	"sort"
	"strings"
)

// FilterAll matches every driver or scope
const FilterAll = "all"

// Filter holds the table filter state
type Filter struct {
	Search     string
	Driver     string // FilterAll or a driver name
	Scope      string // FilterAll or a scope name
	SystemOnly bool
}

// NewFilter returns a filter that matches everything
func NewFilter() Filter {
	return Filter{Driver: FilterAll, Scope: FilterAll}
}

// IsActive reports whether any filter narrows the rows
func (f Filter) IsActive() bool {
	return strings.TrimSpace(f.Search) != "" ||
		(f.Driver != "" && f.Driver != FilterAll) ||
		(f.Scope != "" && f.Scope != FilterAll) ||
		f.SystemOnly
}

// Matches reports whether n satisfies every active filter
func (f Filter) Matches(n NetworkSummary) bool {
	if f.Driver != "" && f.Driver != FilterAll && n.Driver != f.Driver {
		return false
	}
	if f.Scope != "" && f.Scope != FilterAll && n.Scope != f.Scope {
		return false
	}
	if f.SystemOnly && !n.IsSystemNetwork() {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Name), q) ||
		strings.Contains(strings.ToLower(n.ID), q) ||
		strings.Contains(strings.ToLower(n.Driver), q) ||
		strings.Contains(strings.ToLower(n.Scope), q)
}

// Apply returns the rows matching f, in their original order
func (f Filter) Apply(rows []NetworkSummary) []NetworkSummary {
	result := make([]NetworkSummary, 0, len(rows))
	for _, n := range rows {
		if f.Matches(n) {
			result = append(result, n)
		}
	}
	return result
}

// SortField selects the table sort column
type SortField int

const (
	SortByName SortField = iota
	SortByDriver
	SortByScope
	SortByContainers
)

// String returns the column label for the sort field
func (s SortField) String() string {
	switch s {
	case SortByName:
		return "Name"
	case SortByDriver:
		return "Driver"
	case SortByScope:
		return "Scope"
	case SortByContainers:
		return "Containers"
	default:
		return "Unknown"
	}
}

// Next cycles to the following sort field
func (s SortField) Next() SortField {
	return (s + 1) % (SortByContainers + 1)
}

// Sort orders rows in place. count supplies container counts for
// SortByContainers; unknown counts sort as -1. Ties fall back to name.
func Sort(rows []NetworkSummary, field SortField, ascending bool, count func(id string) int) {
	less := func(a, b NetworkSummary) int {
		switch field {
		case SortByDriver:
			return strings.Compare(a.Driver, b.Driver)
		case SortByScope:
			return strings.Compare(a.Scope, b.Scope)
		case SortByContainers:
			if count == nil {
				return 0
			}
			return count(a.ID) - count(b.ID)
		default:
			return 0
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := less(rows[i], rows[j])
		if c == 0 {
			c = strings.Compare(rows[i].Name, rows[j].Name)
		}
		if ascending {
			return c < 0
		}
		return c > 0
	})
}

// Choices returns FilterAll followed by the distinct non-empty values of
// field across rows, sorted
func Choices(rows []NetworkSummary, field func(NetworkSummary) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, n := range rows {
		v := field(n)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{FilterAll}, values...)
}
