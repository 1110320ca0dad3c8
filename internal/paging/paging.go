// Package paging slices ordered lists into 1-based pages and computes the
// "showing X-Y of Z" range shown under each list.
package paging

import (
	"net/http"
	"strconv"
	"strings"
)

// PageSize is the default number of rows shown in dashboard lists.
const PageSize = 10

// CatalogPageSize is the default page size for the public listing grid.
const CatalogPageSize = 12

// MaxPage caps the page accepted from a query string.
const MaxPage = 100000

// ParsePage extracts the 1-based "page" query parameter. Returns 1 if not
// present or invalid; values above MaxPage are capped.
func ParsePage(r *http.Request) int {
	s := strings.TrimSpace(r.URL.Query().Get("page"))
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	if n > MaxPage {
		return MaxPage
	}
	return n
}

// Paginate returns page (1-based) of items. Pages outside 1..TotalPages yield
// an empty slice. A non-positive size disables paging.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		if page == 1 {
			return items
		}
		return items[:0]
	}
	if page < 1 || len(items) == 0 || page-1 > (len(items)-1)/size {
		return items[:0]
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(count/size). An empty list has zero pages.
func TotalPages(count, size int) int {
	if count <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// Clamp keeps page within 1..totalPages, or 1 when there are no pages.
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Range holds computed display values for one page.
type Range struct {
	Start   int  `json:"start"` // 1-based index of the first row shown, 0 if none
	End     int  `json:"end"`   // 1-based index of the last row shown, 0 if none
	Total   int  `json:"total"`
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

// ComputeRange calculates the display range for page given the number of
// rows shown and the filtered total.
func ComputeRange(page, size, shown, total int) Range {
	pages := TotalPages(total, size)
	if shown == 0 {
		return Range{Total: total, HasPrev: page > 1 && pages > 0, HasNext: page < pages}
	}
	start := 1
	if size > 0 {
		start = (page-1)*size + 1
	}
	return Range{
		Start:   start,
		End:     start + shown - 1,
		Total:   total,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}
