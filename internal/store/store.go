package store

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"kitchenfab_admin/internal/models"
)

// ResourceAPI is the slice of an API client the store depends on. The
// concrete clients in internal/api satisfy it; tests supply fakes.
type ResourceAPI[T any] interface {
	List(ctx context.Context, params url.Values) (models.Page[T], error)
	Create(ctx context.Context, payload interface{}) (*T, error)
	Update(ctx context.Context, id int64, payload interface{}) (*T, error)
	Patch(ctx context.Context, id int64, partial interface{}) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Pagination is the page position of the store's current window.
type Pagination struct {
	Count       int
	Page        int
	PageSize    int
	HasNext     bool
	HasPrevious bool
}

// Store holds the current page of one resource in memory and mediates all
// CRUD against its API client. It is safe for concurrent use.
//
// Every list fetch carries a generation number; a response is applied only
// while its generation is still the latest issued, so an older fetch that
// resolves late can never clobber fresher state.
type Store[T any] struct {
	mu sync.Mutex

	api   ResourceAPI[T]
	keyOf func(T) int64

	items    []T
	loading  bool
	errMsg   string
	filters  map[string]string
	page     int
	pageSize int
	count    int
	hasNext  bool
	hasPrev  bool

	gen       uint64
	closed    bool
	listeners []func()
}

// New creates a store over an API client. keyOf extracts the record id used
// to match rows on update and delete.
func New[T any](api ResourceAPI[T], keyOf func(T) int64, pageSize int) *Store[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Store[T]{
		api:      api,
		keyOf:    keyOf,
		items:    []T{},
		filters:  map[string]string{},
		page:     1,
		pageSize: pageSize,
	}
}

// Items returns a copy of the current in-memory records.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether a list fetch is in flight.
func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last fetch or mutation error message, or "".
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Filters returns a copy of the active filter set.
func (s *Store[T]) Filters() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}
	return out
}

// Pagination returns the current page position.
func (s *Store[T]) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Pagination{
		Count:       s.count,
		Page:        s.page,
		PageSize:    s.pageSize,
		HasNext:     s.hasNext,
		HasPrevious: s.hasPrev,
	}
}

// OnChange registers a listener invoked after every state change. Listeners
// must read state through the getters; they run without the store lock held.
func (s *Store[T]) OnChange(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Close marks the store unmounted. Responses resolving afterwards are
// discarded instead of mutating state nobody renders.
func (s *Store[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Fetch loads the current page with the active filters. Filter and page
// changes route through it; it blocks until the response is applied or
// discarded.
func (s *Store[T]) Fetch(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	s.loading = true
	params := s.queryParamsLocked()
	s.mu.Unlock()
	s.notify()

	page, err := s.api.List(ctx, params)

	s.mu.Lock()
	if s.closed || gen != s.gen {
		// A newer fetch was issued (or the page unmounted) while this one
		// was in flight; its result is stale.
		s.mu.Unlock()
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.mu.Unlock()
		s.notify()
		return
	}
	s.errMsg = ""
	s.items = page.Results
	s.count = page.Count
	s.hasNext = page.HasNext()
	s.hasPrev = page.HasPrevious()
	s.mu.Unlock()
	s.notify()
}

// Refresh re-fetches with the current filters and page unchanged.
func (s *Store[T]) Refresh(ctx context.Context) {
	s.Fetch(ctx)
}

// Search merges a search term into the filters, resets to page 1 and
// re-fetches. An empty term clears the search filter.
func (s *Store[T]) Search(ctx context.Context, term string) {
	s.mu.Lock()
	if term == "" {
		delete(s.filters, "search")
	} else {
		s.filters["search"] = term
	}
	s.page = 1
	s.mu.Unlock()
	s.Fetch(ctx)
}

// FilterBy merges one filter into the filter set, resets to page 1 and
// re-fetches. An empty value clears the filter.
func (s *Store[T]) FilterBy(ctx context.Context, key, value string) {
	s.mu.Lock()
	if value == "" {
		delete(s.filters, key)
	} else {
		s.filters[key] = value
	}
	s.page = 1
	s.mu.Unlock()
	s.Fetch(ctx)
}

// ChangePage moves to another page and re-fetches.
func (s *Store[T]) ChangePage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	s.Fetch(ctx)
}

// ChangePageSize changes the window size, resets to page 1 and re-fetches.
func (s *Store[T]) ChangePageSize(ctx context.Context, size int) {
	if size < 1 {
		size = 1
	}
	s.mu.Lock()
	s.pageSize = size
	s.page = 1
	s.mu.Unlock()
	s.Fetch(ctx)
}

// Create posts a new record. On success the server's copy (not the input) is
// unshifted into the in-memory list without a refetch.
func (s *Store[T]) Create(ctx context.Context, payload interface{}) Result[T] {
	created, err := s.api.Create(ctx, payload)
	if err != nil {
		s.setErr(err)
		return fail[T](err)
	}
	s.mu.Lock()
	if !s.closed {
		s.items = append([]T{*created}, s.items...)
		s.count++
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notify()
	return ok(created)
}

// Update replaces a record server-side and mirrors the response over the
// matching in-memory row.
func (s *Store[T]) Update(ctx context.Context, id int64, payload interface{}) Result[T] {
	updated, err := s.api.Update(ctx, id, payload)
	if err != nil {
		s.setErr(err)
		return fail[T](err)
	}
	s.replace(id, *updated)
	return ok(updated)
}

// ToggleStatus patches the is_active flag and mirrors the response in place.
func (s *Store[T]) ToggleStatus(ctx context.Context, id int64, active bool) Result[T] {
	updated, err := s.api.Patch(ctx, id, map[string]interface{}{"is_active": active})
	if err != nil {
		s.setErr(err)
		return fail[T](err)
	}
	s.replace(id, *updated)
	return ok(updated)
}

// PatchRecord applies an arbitrary partial update and mirrors the response in
// place. Used for workflow-state and project-status moves.
func (s *Store[T]) PatchRecord(ctx context.Context, id int64, partial interface{}) Result[T] {
	updated, err := s.api.Patch(ctx, id, partial)
	if err != nil {
		s.setErr(err)
		return fail[T](err)
	}
	s.replace(id, *updated)
	return ok(updated)
}

// Delete removes a record server-side and filters it out of the in-memory
// list. A failed delete leaves the list unchanged.
func (s *Store[T]) Delete(ctx context.Context, id int64) Result[struct{}] {
	if err := s.api.Delete(ctx, id); err != nil {
		s.setErr(err)
		return fail[struct{}](err)
	}
	s.mu.Lock()
	if !s.closed {
		kept := s.items[:0:0]
		for _, item := range s.items {
			if s.keyOf(item) != id {
				kept = append(kept, item)
			}
		}
		if len(kept) < len(s.items) && s.count > 0 {
			s.count--
		}
		s.items = kept
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notify()
	return Result[struct{}]{Success: true}
}

func (s *Store[T]) replace(id int64, updated T) {
	s.mu.Lock()
	if !s.closed {
		for i, item := range s.items {
			if s.keyOf(item) == id {
				s.items[i] = updated
				break
			}
		}
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store[T]) setErr(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.mu.Unlock()
	s.notify()
}

func (s *Store[T]) queryParamsLocked() url.Values {
	params := url.Values{}
	for key, value := range s.filters {
		params.Set(key, value)
	}
	params.Set("page", strconv.Itoa(s.page))
	params.Set("page_size", strconv.Itoa(s.pageSize))
	return params
}

func (s *Store[T]) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
