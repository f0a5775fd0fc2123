package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"viztube/internal/common"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a validated page window.
type PageRequest struct {
	Page  int64
	Limit int64
}

// ParsePageRequest reads the page and limit query values. Absent or
// non-positive values fall back to defaults and limit is capped at MaxLimit.
// Non-numeric input is rejected.
func ParsePageRequest(rawPage, rawLimit string) (PageRequest, error) {
	page, err := parsePositive("page", rawPage, DefaultPage)
	if err != nil {
		return PageRequest{}, err
	}
	limit, err := parsePositive("limit", rawLimit, DefaultLimit)
	if err != nil {
		return PageRequest{}, err
	}
	return NewPageRequest(page, limit), nil
}

// NewPageRequest applies the same defaults and cap to already-parsed values.
// Page is bounded so Offset and PagingCounter fit in an int64; a page past
// the end is still a valid, empty window.
func NewPageRequest(page, limit int64) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt64 / limit; page > maxPage {
		page = maxPage
	}
	return PageRequest{Page: page, Limit: limit}
}

func parsePositive(name, raw string, fallback int64) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, common.Validation(fmt.Sprintf("%s must be a number", name))
	}
	return n, nil
}

// Offset is the number of rows skipped before this window.
func (p PageRequest) Offset() int64 {
	return (p.Page - 1) * p.Limit
}

// Page is the paginated envelope shared by every list endpoint and both
// stores, whether the total came from a count query or a count facet.
type Page[T any] struct {
	Docs          []T    `json:"docs"`
	TotalDocs     int64  `json:"totalDocs"`
	Limit         int64  `json:"limit"`
	Page          int64  `json:"page"`
	TotalPages    int64  `json:"totalPages"`
	PagingCounter int64  `json:"pagingCounter"`
	HasPrevPage   bool   `json:"hasPrevPage"`
	HasNextPage   bool   `json:"hasNextPage"`
	PrevPage      *int64 `json:"prevPage"`
	NextPage      *int64 `json:"nextPage"`
}

// NewPage derives the page metadata from the window and the total count.
func NewPage[T any](docs []T, totalDocs int64, req PageRequest) Page[T] {
	if docs == nil {
		docs = []T{}
	}
	req = NewPageRequest(req.Page, req.Limit)

	totalPages := totalDocs / req.Limit
	if totalDocs%req.Limit != 0 {
		totalPages++
	}

	p := Page[T]{
		Docs:          docs,
		TotalDocs:     totalDocs,
		Limit:         req.Limit,
		Page:          req.Page,
		TotalPages:    totalPages,
		PagingCounter: req.Offset() + 1,
		HasPrevPage:   req.Page > 1,
		HasNextPage:   req.Page < totalPages,
	}
	if p.HasPrevPage {
		prev := req.Page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := req.Page + 1
		p.NextPage = &next
	}
	return p
}

// MapPage reshapes the docs of a page and keeps its metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Docs))
	for _, d := range p.Docs {
		out = append(out, fn(d))
	}
	return Page[U]{
		Docs:          out,
		TotalDocs:     p.TotalDocs,
		Limit:         p.Limit,
		Page:          p.Page,
		TotalPages:    p.TotalPages,
		PagingCounter: p.PagingCounter,
		HasPrevPage:   p.HasPrevPage,
		HasNextPage:   p.HasNextPage,
		PrevPage:      p.PrevPage,
		NextPage:      p.NextPage,
	}
}

// Window slices an already materialized, already ordered list. Stores that
// cannot push the window down use this so their metadata stays identical.
func Window[T any](all []T, req PageRequest) Page[T] {
	req = NewPageRequest(req.Page, req.Limit)
	total := int64(len(all))
	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	docs := make([]T, end-start)
	copy(docs, all[start:end])
	return NewPage(docs, total, req)
}

// VideoQuery bundles everything a video listing needs from the store.
type VideoQuery struct {
	Filter         VideoFilter
	Sort           Sort
	Page           PageRequest
	WithLikeCounts bool
}
