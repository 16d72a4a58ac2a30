package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{name: "absent", wantPage: 1, wantLimit: 10},
		{name: "numeric", page: "3", limit: "25", wantPage: 3, wantLimit: 25},
		{name: "non numeric", page: "abc", limit: "x", wantPage: 1, wantLimit: 10},
		{name: "zero and negative", page: "0", limit: "-5", wantPage: 1, wantLimit: 10},
		{name: "limit capped", page: "2", limit: "1000", wantPage: 2, wantLimit: MaxLimit},
		{name: "whitespace", page: " 4 ", limit: " 5", wantPage: 4, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestOffsetAndPageCount(t *testing.T) {
	p := New(3, 10)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 0, p.PageCount(0))
	assert.Equal(t, 1, p.PageCount(10))
	assert.Equal(t, 2, p.PageCount(11))
	assert.Equal(t, 3, New(1, 4).PageCount(9))
}

func TestHugePageKeepsOffsetNonNegative(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
	}{
		{name: "max int page", page: "9223372036854775807", limit: "10"},
		{name: "max int page, max limit", page: "9223372036854775807", limit: "100"},
		{name: "page just past the wrap", page: "922337203685477581", limit: "10"},
		{name: "max int page, limit one", page: "9223372036854775807", limit: "1"},
		{name: "beyond int range", page: "99999999999999999999", limit: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.page, tt.limit)
			assert.Positive(t, p.Page)
			assert.GreaterOrEqual(t, p.Offset(), 0)
			assert.Equal(t, 1, p.PageCount(p.Limit))
		})
	}
}

func TestNewCapsPage(t *testing.T) {
	p := New(math.MaxInt, 10)
	assert.Equal(t, math.MaxInt/10, p.Page)
	assert.GreaterOrEqual(t, p.Offset(), 0)
}
