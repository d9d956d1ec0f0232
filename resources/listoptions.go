package resources

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions are the standard OrderCloud list parameters. Filters is a
// multi-map because filter keys are arbitrary entity fields supplied by
// the caller, each possibly repeated (OR semantics on the platform).
type ListOptions struct {
	Search   string
	SearchOn []string
	SortBy   []string
	Page     int
	PageSize int
	Filters  url.Values
}

// QueryValues renders the options as query parameters. Zero values are
// omitted so the platform's defaults apply.
func (o ListOptions) QueryValues() url.Values {
	values := url.Values{}
	if o.Search != "" {
		values.Set("search", o.Search)
	}
	if len(o.SearchOn) > 0 {
		values.Set("searchOn", strings.Join(o.SearchOn, ","))
	}
	if len(o.SortBy) > 0 {
		values.Set("sortBy", strings.Join(o.SortBy, ","))
	}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	for key, filterValues := range o.Filters {
		for _, v := range filterValues {
			values.Add(key, v)
		}
	}
	return values
}
