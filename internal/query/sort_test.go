package query

import (
	"reflect"
	"testing"
	"time"

	"github.com/sitedesk/sitedesk/internal/models"
)

func TestSortBy_CurrencyMagnitude(t *testing.T) {
	deals := []models.Deal{
		{Name: "a", Value: "$950K"},
		{Name: "b", Value: "$1.1M"},
		{Name: "c", Value: "$300K"},
	}

	got := SortBy(deals, func(d models.Deal) any { return d.Value }, true)

	want := []string{"$1.1M", "$950K", "$300K"}
	for i, w := range want {
		if got[i].Value != w {
			t.Fatalf("descending value order = %v %v %v, expected %v",
				got[0].Value, got[1].Value, got[2].Value, want)
		}
	}
}

func TestSortBy_Stable(t *testing.T) {
	type row struct {
		Key   string
		Order int
	}
	rows := []row{
		{"b", 1}, {"a", 2}, {"b", 3}, {"a", 4}, {"b", 5},
	}

	got := SortBy(rows, func(r row) any { return r.Key }, false)

	want := []row{{"a", 2}, {"a", 4}, {"b", 1}, {"b", 3}, {"b", 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stable sort = %+v, expected %+v", got, want)
	}
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 2}
	SortBy(in, func(n int) any { return n }, false)
	if !reflect.DeepEqual(in, []int{3, 1, 2}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestCompare(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"floats", 2.5, 2.5, 0},
		{"mixed numeric", int64(3), 2.0, 1},
		{"times", t1, t2, -1},
		{"currency strings", "$950K", "$1.1M", -1},
		{"plain strings case-folded", "Beta", "alpha", 1},
		{"equal strings", "x", "x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("Compare(%v, %v) = %d, expected sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
