package pagination

const DefaultPageSize = 10

type Page[T any] struct {
	Items           []T
	Count           int
	Number          int
	TotalItems      int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Paginate slices items into the requested 1-based page. Out-of-range page
// numbers clamp to the nearest valid page instead of failing. An empty
// input still yields page 1 of 1.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := min(start+size, len(items))

	var pageItems []T
	if start < len(items) {
		pageItems = items[start:end]
	}

	return Page[T]{
		Items:           pageItems,
		Count:           len(pageItems),
		Number:          number,
		TotalItems:      len(items),
		TotalPages:      totalPages,
		HasNextPage:     number < totalPages,
		HasPreviousPage: number > 1,
	}
}
