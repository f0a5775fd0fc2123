package query

import (
	"fmt"
	"strings"

	"viztube/internal/common"
)

// SortField is one of the allow-listed video orderings.
type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortUpdatedAt SortField = "updatedAt"
	SortViews     SortField = "views"
	SortTitle     SortField = "title"
)

var sortable = map[string]SortField{
	"createdat": SortCreatedAt,
	"updatedat": SortUpdatedAt,
	"views":     SortViews,
	"title":     SortTitle,
}

type Sort struct {
	Field     SortField
	Ascending bool
}

// DefaultSort is newest first.
var DefaultSort = Sort{Field: SortCreatedAt}

// ResolveSort maps sortBy/sortType query values. "asc" is ascending and any
// other direction, including none, is descending. Unknown fields are a 400.
func ResolveSort(field, direction string) (Sort, error) {
	s := DefaultSort
	if f := strings.TrimSpace(field); f != "" {
		resolved, ok := sortable[strings.ToLower(f)]
		if !ok {
			return Sort{}, common.Validation(fmt.Sprintf("Cannot sort by %q", f),
				"sortBy must be one of createdAt, updatedAt, views, title")
		}
		s.Field = resolved
	}
	s.Ascending = strings.EqualFold(strings.TrimSpace(direction), "asc")
	return s, nil
}

// Direction returns 1 or -1, the form both stores take.
func (s Sort) Direction() int {
	if s.Ascending {
		return 1
	}
	return -1
}
