package query

import (
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name       string
		page, size int
		want       []int
	}{
		{"first page", 1, 3, []int{1, 2, 3}},
		{"middle page", 2, 3, []int{4, 5, 6}},
		{"short last page", 3, 3, []int{7}},
		{"page past the end", 4, 3, []int{}},
		{"page below one normalizes to first", 0, 3, []int{1, 2, 3}},
		{"zero size returns everything", 1, 0, items},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.size)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Paginate(page=%d, size=%d) = %v, expected %v", tt.page, tt.size, got, tt.want)
			}
		})
	}
}

// Concatenating every page in order must reproduce the input exactly once.
func TestPaginate_PagesPartitionInput(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}
	const size = 5

	pages := TotalPages(len(items), size)
	var joined []int
	for p := 1; p <= pages; p++ {
		joined = append(joined, Paginate(items, p, size)...)
	}

	if !reflect.DeepEqual(joined, items) {
		t.Errorf("pages do not partition input: %v", joined)
	}
	if got := Paginate(items, pages+1, size); len(got) != 0 {
		t.Errorf("page after last returned %v", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 0, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, expected %d", tt.n, tt.size, got, tt.want)
		}
	}
}
