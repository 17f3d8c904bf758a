package resource

import (
	"fmt"

	"scribe/internal/repository"
)

// Links holds navigation URLs for a paginated listing. Prev and next are
// null at the edges.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Meta describes the position of the page within the full result set.
// From and to are null when the page is empty.
type Meta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

// Paginated is the envelope every list endpoint returns.
type Paginated[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// NewPaginated wraps one page of serialized items with links and meta.
func NewPaginated[T any](items []T, page repository.Page, total int64, path string) *Paginated[T] {
	page = page.Normalize()

	lastPage := int((total + int64(page.Size) - 1) / int64(page.Size))
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(n int) string {
		return fmt.Sprintf("%s?page=%d", path, n)
	}

	links := Links{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page.Number > 1 {
		prev := pageURL(page.Number - 1)
		links.Prev = &prev
	}
	if page.Number < lastPage {
		next := pageURL(page.Number + 1)
		links.Next = &next
	}

	meta := Meta{
		CurrentPage: page.Number,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     page.Size,
		Total:       total,
	}
	if len(items) > 0 {
		from := page.Offset() + 1
		to := page.Offset() + len(items)
		meta.From = &from
		meta.To = &to
	}

	if items == nil {
		items = []T{}
	}
	return &Paginated[T]{Data: items, Links: links, Meta: meta}
}
