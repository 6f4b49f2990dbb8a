package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		page  int
		limit int
		want  Meta
	}{
		{"empty catalog", 0, 1, 10, Meta{Total: 0, Page: 1, Limit: 10, TotalPages: 1}},
		{"exact pages", 30, 2, 10, Meta{Total: 30, Page: 2, Limit: 10, TotalPages: 3}},
		{"partial last page", 31, 4, 10, Meta{Total: 31, Page: 4, Limit: 10, TotalPages: 4}},
		{"zero page and limit", 5, 0, 0, Meta{Total: 5, Page: 1, Limit: DefaultLimit, TotalPages: 1}},
		{"negative input", -3, -1, -20, Meta{Total: 0, Page: 1, Limit: DefaultLimit, TotalPages: 1}},
		{"limit capped", 1000, 1, 5000, Meta{Total: 1000, Page: 1, Limit: MaxLimit, TotalPages: 10}},
		{"page capped", 10, math.MaxInt, 10, Meta{Total: 10, Page: MaxPage, Limit: 10, TotalPages: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.total, tt.page, tt.limit))
		})
	}
}

func TestPaginateMonotonic(t *testing.T) {
	for _, limit := range []int{1, 7, 12, 100} {
		prev := 0
		for total := int64(0); total < 500; total++ {
			pages := Paginate(total, 1, limit).TotalPages
			assert.GreaterOrEqual(t, pages, 1)
			assert.GreaterOrEqual(t, pages, prev)
			prev = pages
		}
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 0))
	assert.Equal(t, DefaultLimit, Offset(2, -1))
}

func TestOffsetHugePage(t *testing.T) {
	page, limit := NormalizePage(math.MaxInt, MaxLimit)
	assert.Equal(t, MaxPage, page)
	assert.Equal(t, MaxLimit, limit)

	for _, p := range []int{math.MaxInt, math.MaxInt / 2, math.MaxInt/MaxLimit + 2} {
		off := Offset(p, MaxLimit)
		assert.GreaterOrEqual(t, off, 0)
		assert.Equal(t, (MaxPage-1)*MaxLimit, off)
	}
}
