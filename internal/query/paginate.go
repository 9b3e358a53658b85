package query

// Paginate slices one page out of an already filtered and sorted sequence.
// Pages are 1-based; anything below 1 is normalized to the first page.
// Concatenating every page in order reproduces the input exactly once.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceiling(n / size); zero items means zero pages. A
// non-positive size disables pagination, so a non-empty input is one page,
// matching what Paginate returns for the same arguments.
func TotalPages(n, size int) int {
	if n <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (n + size - 1) / size
}
