package viewmodel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPaginateWindows(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		radius  int
		want    []int
	}{
		{name: "first page", current: 1, total: 10, radius: DefaultPageRadius, want: []int{1, 2, 3}},
		{name: "middle page", current: 5, total: 10, radius: DefaultPageRadius, want: []int{3, 4, 5, 6, 7}},
		{name: "last page", current: 10, total: 10, radius: DefaultPageRadius, want: []int{8, 9, 10}},
		{name: "single page", current: 1, total: 1, radius: DefaultPageRadius, want: []int{1}},
		{name: "current below range", current: -3, total: 10, radius: DefaultPageRadius, want: []int{1, 2, 3}},
		{name: "current above range", current: 99, total: 10, radius: DefaultPageRadius, want: []int{8, 9, 10}},
		{name: "zero radius", current: 4, total: 10, radius: 0, want: []int{4}},
		{name: "negative radius", current: 4, total: 10, radius: -1, want: []int{4}},
		{name: "wide radius", current: 2, total: 4, radius: 10, want: []int{1, 2, 3, 4}},
		{name: "max radius", current: 1, total: 10, radius: math.MaxInt, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "max current and radius", current: math.MaxInt, total: 3, radius: math.MaxInt, want: []int{1, 2, 3}},
		{name: "min current", current: math.MinInt, total: 3, radius: math.MaxInt, want: []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(tc.current, tc.total, tc.radius)
			if diff := cmp.Diff(tc.want, got.VisiblePages); diff != "" {
				t.Fatalf("Paginate(%d, %d, %d) pages mismatch (-want +got):\n%s", tc.current, tc.total, tc.radius, diff)
			}
		})
	}
}

func TestPaginateNavigation(t *testing.T) {
	got := Paginate(5, 10, DefaultPageRadius)
	want := PaginationWindow{
		CurrentPage:  5,
		TotalPages:   10,
		VisiblePages: []int{3, 4, 5, 6, 7},
		HasPrevious:  true,
		HasNext:      true,
		PreviousPage: 4,
		NextPage:     6,
		ShowFirst:    true,
		ShowLast:     true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Paginate(5, 10) mismatch (-want +got):\n%s", diff)
	}

	first := Paginate(1, 10, DefaultPageRadius)
	if first.HasPrevious || first.PreviousPage != 0 || first.ShowFirst {
		t.Fatalf("first page = %+v, want no previous link", first)
	}
	last := Paginate(10, 10, DefaultPageRadius)
	if last.HasNext || last.NextPage != 0 || last.ShowLast {
		t.Fatalf("last page = %+v, want no next link", last)
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate(3, 0, DefaultPageRadius)
	if got.CurrentPage != 1 || got.TotalPages != 0 || len(got.VisiblePages) != 0 {
		t.Fatalf("Paginate(3, 0) = %+v, want empty window on page 1", got)
	}
	if got.HasNext || got.HasPrevious {
		t.Fatalf("Paginate(3, 0) = %+v, want no navigation", got)
	}
}

func TestPaginateWindowProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("window is contiguous, bounded and holds the current page", prop.ForAll(
		func(current, total, radius int) bool {
			w := Paginate(current, total, radius)
			if len(w.VisiblePages) == 0 {
				return false
			}
			if w.VisiblePages[0] < 1 || w.VisiblePages[len(w.VisiblePages)-1] > total {
				return false
			}
			seen := false
			for i, page := range w.VisiblePages {
				if i > 0 && page != w.VisiblePages[i-1]+1 {
					return false
				}
				if page == w.CurrentPage {
					seen = true
				}
			}
			return seen && len(w.VisiblePages) <= 2*radius+1
		},
		gen.IntRange(-50, 500),
		gen.IntRange(1, 400),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestTotalPagesFor(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 20, 0},
		{-4, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{5, 0, 5},
	}
	for _, tc := range tests {
		if got := TotalPagesFor(tc.count, tc.size); got != tc.want {
			t.Fatalf("TotalPagesFor(%d, %d) = %d, want %d", tc.count, tc.size, got, tc.want)
		}
	}
}
