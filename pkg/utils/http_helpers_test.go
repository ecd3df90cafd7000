package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Sort)
	assert.Empty(t, filter.Filter)
}

func TestParseFilterFromQueryLimitIsCapped(t *testing.T) {
	values := url.Values{"limit": {"5000"}}
	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)

	values = url.Values{"limit": {"-3"}}
	filter = ParseFilterFromQuery(values)
	assert.Equal(t, DefaultLimit, filter.Limit, "non-positive limit falls back to the default")
}

func TestParseFilterFromQueryPageComputesOffset(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"10"}}
	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 20, filter.Offset)

	// An explicit offset wins over the page-derived one.
	values.Set("offset", "7")
	filter = ParseFilterFromQuery(values)
	assert.Equal(t, 7, filter.Offset)
}

func TestParseFilterFromQuerySortAndFilter(t *testing.T) {
	values := url.Values{
		"sort[name]":       {"DESC"},
		"sort[created_at]": {"sideways"},
		"filter[type]":     {"Research Lab", "Teaching Lab"},
		"filter[status]":   {"Active"},
		"search":           {"optics"},
	}
	filter := ParseFilterFromQuery(values)

	assert.Equal(t, map[string]string{"name": "desc"}, filter.Sort, "unknown sort direction is dropped")
	assert.Equal(t, "Research Lab,Teaching Lab", filter.Filter["type"], "repeated filter values merge into a comma list")
	assert.Equal(t, "Active", filter.Filter["status"])
	assert.Equal(t, "optics", filter.Search)
}

func TestParseFilterFromQueryWithPaginationFlag(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{"withPagination": {"false"}})
	assert.False(t, filter.WithPagination)

	filter = ParseFilterFromQuery(url.Values{"withPagination": {"true"}})
	assert.True(t, filter.WithPagination)
}
