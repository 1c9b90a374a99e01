package services

import (
	"context"
	"sync"

	"github.com/shelterdesk/portal/internal/models"
)

// PageFetcher loads one page of a listing from the backend.
type PageFetcher[T any] func(ctx context.Context, page, pageSize int) (models.Page[T], error)

// Pager drives a "page N of M" view against one listing endpoint. It is the
// single pagination controller shared by every list view.
//
// Policies:
//   - SetPage clamps the requested page into [1, totalPages] before fetching,
//     so the backend never sees an out-of-range page from this client.
//   - A failed load keeps the previously loaded items visible and records the
//     error (stale-but-visible), instead of blanking the view.
//   - A response that arrives after a newer page was requested is dropped.
//   - No caching across pages: revisiting a page refetches it.
type Pager[T any] struct {
	fetch    PageFetcher[T]
	pageSize int

	mu         sync.Mutex
	seq        uint64
	page       int
	totalCount int
	totalPages int
	items      []T
	err        error
}

func NewPager[T any](fetch PageFetcher[T], pageSize int) *Pager[T] {
	return &Pager[T]{fetch: fetch, pageSize: pageSize, page: 1}
}

// LoadPage fetches page n and replaces the controller state on success.
func (p *Pager[T]) LoadPage(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}

	p.mu.Lock()
	p.seq++
	issued := p.seq
	size := p.pageSize
	p.mu.Unlock()

	result, err := p.fetch(ctx, n, size)

	p.mu.Lock()
	defer p.mu.Unlock()

	if issued != p.seq {
		// A newer page was requested while this one was in flight.
		return nil
	}

	if err != nil {
		p.err = err
		return err
	}

	p.err = nil
	p.page = n
	p.items = result.Items
	p.totalCount = result.TotalCount
	p.totalPages = result.TotalPages
	if p.totalPages == 0 {
		p.totalPages = models.TotalPagesFor(result.TotalCount, size)
	}
	return nil
}

// SetPage clamps n into the known page range and loads it.
func (p *Pager[T]) SetPage(ctx context.Context, n int) error {
	p.mu.Lock()
	if p.totalPages > 0 && n > p.totalPages {
		n = p.totalPages
	}
	if n < 1 {
		n = 1
	}
	p.mu.Unlock()

	return p.LoadPage(ctx, n)
}

// Next loads the following page, staying on the last page at the end.
func (p *Pager[T]) Next(ctx context.Context) error {
	return p.SetPage(ctx, p.Page()+1)
}

// Prev loads the preceding page, staying on page 1 at the start.
func (p *Pager[T]) Prev(ctx context.Context) error {
	return p.SetPage(ctx, p.Page()-1)
}

// Items returns the currently displayed page of items. After a failed load
// these are the items of the last successful one.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items
}

func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *Pager[T]) PageSize() int {
	return p.pageSize
}

func (p *Pager[T]) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalCount
}

func (p *Pager[T]) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

// Err returns the error of the last load, or nil after a successful one.
func (p *Pager[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
