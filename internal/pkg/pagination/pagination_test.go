package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSliceFirstPage(t *testing.T) {
	page, meta := Slice(intRange(23), Query{Page: 1, Size: 10})

	require.Len(t, page, 10)
	assert.Equal(t, 1, page[0])
	assert.Equal(t, Meta{Total: 23, CurrentPage: 1, TotalPage: 3, Size: 10, HasNextPage: true}, meta)
}

func TestSliceLastPartialPage(t *testing.T) {
	page, meta := Slice(intRange(23), Query{Page: 3, Size: 10})

	require.Len(t, page, 3)
	assert.Equal(t, []int{21, 22, 23}, page)
	assert.False(t, meta.HasNextPage)
}

func TestSlicePastEndReturnsEmptyNonNil(t *testing.T) {
	page, meta := Slice(intRange(5), Query{Page: 9, Size: 10})

	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 5, meta.Total)
	assert.False(t, meta.HasNextPage)
}

func TestSliceEmptyList(t *testing.T) {
	page, meta := Slice([]int{}, Query{Page: 1, Size: 10})

	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.TotalPage)
}

func TestSliceCopiesPage(t *testing.T) {
	items := intRange(3)
	page, _ := Slice(items, Query{Page: 1, Size: 2})

	page[0] = 99
	assert.Equal(t, 1, items[0], "mutating the page must not touch the source")
}
