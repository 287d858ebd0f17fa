// Package tabular turns a list of records and a ViewState into the ordered,
// filtered sequence a table renders.
package tabular

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// All is the category sentinel that disables the equality filter.
const All = "all"

// ViewState is the per-view search/filter/sort selection.
type ViewState struct {
	Search   string
	Category string
	SortKey  string
}

// SortKey is one entry of a view's fixed comparator set.
type SortKey[R any] struct {
	Key   string
	Label string
	Cmp   func(a, b R) int
}

// Schema maps a record type onto the fields the view model needs.
type Schema[R any] struct {
	Category func(R) string
	Text     func(R) string
	Sorts    []SortKey[R]
}

// DefaultState returns a ViewState with no search, the All category and the
// first sort key selected.
func (s Schema[R]) DefaultState() ViewState {
	state := ViewState{Category: All}
	if len(s.Sorts) > 0 {
		state.SortKey = s.Sorts[0].Key
	}

	return state
}

// Apply filters and sorts records without modifying them. The sort is stable,
// so ties keep their source order. An unknown sort key leaves source order.
func (s Schema[R]) Apply(records []R, state ViewState) []R {
	needle := fold(state.Search)
	out := make([]R, 0, len(records))

	for _, r := range records {
		if !s.matchesCategory(r, state.Category) {
			continue
		}

		if needle != "" && !strings.Contains(fold(s.Text(r)), needle) {
			continue
		}

		out = append(out, r)
	}

	if cmp := s.comparator(state.SortKey); cmp != nil {
		slices.SortStableFunc(out, cmp)
	}

	return out
}

func (s Schema[R]) matchesCategory(r R, category string) bool {
	if category == "" || category == All || s.Category == nil {
		return true
	}

	return s.Category(r) == category
}

func (s Schema[R]) comparator(key string) func(a, b R) int {
	for _, sk := range s.Sorts {
		if sk.Key == key {
			return sk.Cmp
		}
	}

	return nil
}

// HasSort reports whether key names one of the view's comparators.
func (s Schema[R]) HasSort(key string) bool {
	return s.comparator(key) != nil
}

// Categories lists All followed by every distinct category in first-seen order.
func (s Schema[R]) Categories(records []R) []string {
	out := []string{All}
	if s.Category == nil {
		return out
	}

	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		c := s.Category(r)
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// NextSort returns the key after current, wrapping around.
func (s Schema[R]) NextSort(current string) string {
	if len(s.Sorts) == 0 {
		return current
	}

	for i, sk := range s.Sorts {
		if sk.Key == current {
			return s.Sorts[(i+1)%len(s.Sorts)].Key
		}
	}

	return s.Sorts[0].Key
}

// SortLabel returns the display label for key, or key itself when unknown.
func (s Schema[R]) SortLabel(key string) string {
	for _, sk := range s.Sorts {
		if sk.Key == key {
			return sk.Label
		}
	}

	return key
}

// Next returns the option after current in options, wrapping around.
func Next(options []string, current string) string {
	if len(options) == 0 {
		return current
	}

	i := slices.Index(options, current)

	return options[(i+1)%len(options)]
}

func fold(s string) string {
	return cases.Fold().String(s)
}
