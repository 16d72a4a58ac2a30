// Package pagination normalizes page/limit query parameters.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a normalized page request. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Parse reads raw query values. Absent, non-numeric, or non-positive values
// fall back to the defaults; limit is capped at MaxLimit.
func Parse(rawPage, rawLimit string) Params {
	return New(parsePositive(rawPage, DefaultPage), parsePositive(rawLimit, DefaultLimit))
}

// New clamps numeric values the same way Parse does. Page is also capped so
// Offset never overflows.
func New(page, limit int) Params {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Params{Page: page, Limit: limit}
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageCount is ceil(total/limit).
func (p Params) PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
