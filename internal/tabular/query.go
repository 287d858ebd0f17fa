package tabular

import "net/url"

// StateFromQuery starts from the default state and applies the search, sort
// and category parameters found in q. categoryParam names the category
// parameter, since some views filter by status.
func (s Schema[R]) StateFromQuery(q url.Values, categoryParam string) ViewState {
	state := s.DefaultState()

	if v := q.Get("search"); v != "" {
		state.Search = v
	}

	if v := q.Get(categoryParam); v != "" {
		state.Category = v
	}

	if v := q.Get("sort"); v != "" {
		state.SortKey = v
	}

	return state
}
