// Package pagination slices ordered collections into fixed-size pages.
// Every list feed shares the same page size.
package pagination

// PageSize is the fixed number of items per page for every feed.
const PageSize = 10

// Page is one slice of an ordered collection plus its metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ParsePage turns a raw query parameter into a page number. Absent,
// unparsable, or non-positive values default to page 1.
func ParsePage(raw string) int {
	page := 0
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return 1
		}
		page = page*10 + int(ch-'0')
		if page > 1<<30 {
			break
		}
	}
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages reports how many pages a collection of totalItems spans.
// An empty collection still has one (empty) page.
func TotalPages(totalItems int64, size int) int {
	if totalItems <= 0 {
		return 1
	}
	return int((totalItems + int64(size) - 1) / int64(size))
}

// Clamp bounds a requested page number to the valid range. Requests past the
// last page return the last page rather than failing; this is the documented
// contract for every feed.
func Clamp(requested int, totalItems int64, size int) int {
	if requested < 1 {
		return 1
	}
	if last := TotalPages(totalItems, size); requested > last {
		return last
	}
	return requested
}

// Offset is the database offset for a page.
func Offset(page, size int) int {
	return (page - 1) * size
}

// New assembles a page from items already sliced out of the collection.
func New[T any](items []T, number, size int, totalItems int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(totalItems, size)
	return Page[T]{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}
