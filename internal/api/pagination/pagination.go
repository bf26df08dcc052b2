// Package pagination implements the paged list envelope.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

// Params is a 1-based page plus a page size, parsed from the query
// string with defaults applied.
type Params struct {
	Page  int32
	Limit int32
}

func (p Params) Offset() int32 {
	return (p.Page - 1) * p.Limit
}

// ParseParams reads ?page= and ?limit=, falling back to page 1 and the
// default limit. Out-of-range values are errors, not clamped.
func ParseParams(r *http.Request) (Params, error) {
	params := Params{Page: 1, Limit: DefaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page %q", raw)
		}
		params.Page = int32(page)
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, fmt.Errorf("invalid limit %q", raw)
		}
		params.Limit = int32(limit)
	}

	return params, nil
}

// Envelope wraps a page of results with the total count and links to
// the neighboring pages.
type Envelope[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func pageLink(path string, page, limit int32) *string {
	link := fmt.Sprintf("%s?page=%d&limit=%d", path, page, limit)
	return &link
}

// NewEnvelope computes next/previous links relative to path for the
// given page. A page past the end simply has no next link.
func NewEnvelope[T any](results []T, path string, params Params, total int64) Envelope[T] {
	if results == nil {
		results = []T{}
	}
	env := Envelope[T]{
		Count:   total,
		Results: results,
	}

	last := (total-1)/int64(params.Limit) + 1
	if int64(params.Page) < last {
		env.Next = pageLink(path, params.Page+1, params.Limit)
	}
	if params.Page > 1 {
		env.Previous = pageLink(path, params.Page-1, params.Limit)
	}
	return env
}
