package listing

import "strconv"

// DefaultPerPage is the fixed page size for index listings.
const DefaultPerPage = 10

// PageResult is one page of an index listing plus its pagination metadata.
type PageResult[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

func (r *PageResult[T]) HasNext() bool {
	return r.Page < r.TotalPages
}

func (r *PageResult[T]) HasPrev() bool {
	return r.Page > 1
}

// TotalPages returns how many pages a result set spans. An empty set still
// has one (empty) page.
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// ClampPage turns the raw page query parameter into a valid page number.
// Missing, non-numeric, and non-positive values become page 1; values past
// the end become the last page. Pagination never fails.
func ClampPage(raw string, totalPages int) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
