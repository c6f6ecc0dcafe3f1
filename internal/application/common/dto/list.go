// Package dto provides data transfer objects shared by every resource.
package dto

import (
	"maps"

	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

// ListQuery is the page/limit/filter state of a list request.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

// Normalize clamps Page and PageSize into their valid ranges.
func (q ListQuery) Normalize() ListQuery {
	p := utils.ValidatePagination(q.Page, q.PageSize)
	q.Page, q.PageSize = p.Page, p.PageSize
	return q
}

// Params converts the query to platform list parameters.
func (q ListQuery) Params() platform.ListParams {
	q = q.Normalize()
	return platform.ListParams{
		Page:    q.Page,
		Limit:   q.PageSize,
		Search:  q.Search,
		Filters: maps.Clone(q.Filters),
	}
}

// ListResult is one page of items.
type ListResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// FromPage adapts a platform page, falling back to the requested paging when
// the platform omits it.
func FromPage[T any](p *platform.Page[T], q ListQuery) *ListResult[T] {
	q = q.Normalize()
	res := &ListResult[T]{Items: p.Items, Total: p.Total, Page: p.Page, PageSize: p.Limit}
	if res.Items == nil {
		res.Items = []T{}
	}
	if res.Page < 1 {
		res.Page = q.Page
	}
	if res.PageSize < 1 {
		res.PageSize = q.PageSize
	}
	return res
}

// Slice paginates an in-memory list.
func Slice[T any](items []T, q ListQuery) *ListResult[T] {
	q = q.Normalize()
	return &ListResult[T]{
		Items:    utils.Paginate(items, utils.Pagination{Page: q.Page, PageSize: q.PageSize}),
		Total:    int64(len(items)),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}
