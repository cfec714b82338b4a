// Package view implements the collection-view state shared by every table
// screen: a snapshot of a fully-fetched backend collection, in-memory
// filtering, fixed-size pagination, and confirmed-mutation patching. Fetches
// are sequenced with a monotonic counter so a slow list refresh can never
// overwrite a mutation that committed after the fetch started.
package view

import "sync"

// Filter applies a pure predicate over in-memory records.
func Filter[T any](items []T, pred func(T) bool) []T {
	if pred == nil {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// PageCount returns ceil(total/pageSize), never less than 1.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}

	pages := (total + pageSize - 1) / pageSize

	if pages < 1 {
		return 1
	}

	return pages
}

// Paginate slices one fixed-size page out of items: [(page-1)*size, page*size).
// Out-of-range pages yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// Collection is the per-view snapshot state. All methods are safe for
// concurrent use.
type Collection[T any] struct {
	mu       sync.Mutex
	items    []T
	page     int
	pageSize int
	seq      uint64 // bumped by every fetch begin and every committed mutation
	id       func(T) string
}

// NewCollection creates an empty collection view. id extracts the row
// identifier used by Remove and Replace.
func NewCollection[T any](pageSize int, id func(T) string) *Collection[T] {
	return &Collection[T]{
		page:     1,
		pageSize: pageSize,
		id:       id,
	}
}

// BeginFetch reserves a sequence number for a list fetch. The matching
// CommitFetch succeeds only while no newer fetch has begun and no mutation
// has committed in between.
func (c *Collection[T]) BeginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++

	return c.seq
}

// CommitFetch installs a fetched snapshot. A nil result is stored as an
// empty collection. Returns false when the fetch is stale and was discarded.
func (c *Collection[T]) CommitFetch(seq uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}

	if items == nil {
		items = []T{}
	}
	c.items = items

	return true
}

// Items returns a copy of the current snapshot.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the snapshot size.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// PageSize returns the fixed page size.
func (c *Collection[T]) PageSize() int {
	return c.pageSize
}

// CurrentPage returns the view's current page index.
func (c *Collection[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

// SetPage moves to the requested page when it lies within
// [1, PageCount(total, pageSize)]; otherwise the current page is unchanged.
// Returns the page in effect afterwards.
func (c *Collection[T]) SetPage(requested, total int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if requested >= 1 && requested <= PageCount(total, c.pageSize) {
		c.page = requested
	}

	return c.page
}

// Remove deletes the row with the given id from the snapshot, bumping the
// sequence so in-flight fetches begun earlier are discarded. Returns false
// when no row matched.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if c.id(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.seq++

			return true
		}
	}

	return false
}

// Replace swaps the row with the matching id for the given record, bumping
// the sequence. Returns false when no row matched; no row is inserted.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			c.seq++

			return true
		}
	}

	return false
}

// Find returns the snapshot row with the given id.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}
