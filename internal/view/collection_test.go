package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string
	Price float64
}

func rowID(r row) string { return r.ID }

func makeRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, row{ID: fmt.Sprintf("r%d", i), Price: float64(i * 10)})
	}

	return rows
}

func TestPaginate_PartitionsCollection(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 12, 25, 101} {
		items := makeRows(n)
		size := 5
		pages := PageCount(n, size)

		var reassembled []row
		for p := 1; p <= pages; p++ {
			page := Paginate(items, p, size)
			if p < pages && n > 0 {
				assert.Len(t, page, size, "n=%d page=%d", n, p)
			}
			reassembled = append(reassembled, page...)
		}

		assert.Equal(t, items, append([]row{}, reassembled...), "n=%d", n)
	}
}

func TestPaginate_TwelveItemsPageSizeFive(t *testing.T) {
	items := makeRows(12)

	assert.Len(t, Paginate(items, 1, 5), 5)
	assert.Len(t, Paginate(items, 2, 5), 5)
	assert.Len(t, Paginate(items, 3, 5), 2)
	assert.Empty(t, Paginate(items, 4, 5))
	assert.Equal(t, 3, PageCount(12, 5))
}

func TestSetPage_OutOfRangeIsNoOp(t *testing.T) {
	c := NewCollection(5, rowID)
	seq := c.BeginFetch()
	require.True(t, c.CommitFetch(seq, makeRows(12)))

	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 3, c.SetPage(3, c.Len()))
	assert.Equal(t, 3, c.SetPage(4, c.Len()), "page past the end leaves current page unchanged")
	assert.Equal(t, 3, c.SetPage(0, c.Len()))
	assert.Equal(t, 3, c.CurrentPage())
	assert.Equal(t, 2, c.SetPage(2, c.Len()))
}

func TestFilter_Idempotent(t *testing.T) {
	items := makeRows(20)
	pred := func(r row) bool { return r.Price >= 50 && r.Price <= 150 }

	once := Filter(items, pred)
	twice := Filter(once, pred)

	assert.Equal(t, once, twice)
	for _, r := range once {
		assert.True(t, pred(r))
	}
}

func TestCollection_RemoveAfterConfirmedDelete(t *testing.T) {
	c := NewCollection(5, rowID)
	seq := c.BeginFetch()
	require.True(t, c.CommitFetch(seq, makeRows(6)))

	before := c.Len()
	assert.True(t, c.Remove("r3"))
	assert.Equal(t, before-1, c.Len())

	_, found := c.Find("r3")
	assert.False(t, found)

	// removing the same id again changes nothing
	assert.False(t, c.Remove("r3"))
	assert.Equal(t, before-1, c.Len())
}

func TestCollection_ReplacePatchesSingleRow(t *testing.T) {
	c := NewCollection(5, rowID)
	seq := c.BeginFetch()
	require.True(t, c.CommitFetch(seq, makeRows(4)))

	assert.True(t, c.Replace(row{ID: "r2", Price: 999}))

	items := c.Items()
	for _, r := range items {
		if r.ID == "r2" {
			assert.Equal(t, 999.0, r.Price)
		} else {
			assert.NotEqual(t, 999.0, r.Price)
		}
	}

	assert.False(t, c.Replace(row{ID: "missing", Price: 1}))
	assert.Len(t, c.Items(), 4)
}

func TestCollection_StaleFetchIsDiscarded(t *testing.T) {
	c := NewCollection(5, rowID)

	first := c.BeginFetch()
	second := c.BeginFetch()
	require.True(t, c.CommitFetch(second, makeRows(3)))

	// the slower, older fetch must not overwrite the newer snapshot
	assert.False(t, c.CommitFetch(first, makeRows(10)))
	assert.Equal(t, 3, c.Len())
}

func TestCollection_MutationInvalidatesInFlightFetch(t *testing.T) {
	c := NewCollection(5, rowID)
	seq := c.BeginFetch()
	require.True(t, c.CommitFetch(seq, makeRows(5)))

	inFlight := c.BeginFetch()
	require.True(t, c.Remove("r1"))

	// the fetch began before the delete committed; its snapshot still
	// contains r1 and must be discarded
	assert.False(t, c.CommitFetch(inFlight, makeRows(5)))

	_, found := c.Find("r1")
	assert.False(t, found)
	assert.Equal(t, 4, c.Len())
}

func TestCommitFetch_NilBecomesEmpty(t *testing.T) {
	c := NewCollection(5, rowID)
	seq := c.BeginFetch()
	require.True(t, c.CommitFetch(seq, nil))

	assert.NotNil(t, c.Items())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1, PageCount(c.Len(), c.PageSize()))
}
