package viewmodel

// DefaultPageRadius is how many neighbours appear on each side of the
// current page.
const DefaultPageRadius = 2

// PaginationWindow is the set of page links a pager renders.
type PaginationWindow struct {
	CurrentPage int
	TotalPages  int
	// VisiblePages is ascending and contiguous.
	VisiblePages []int
	HasPrevious  bool
	HasNext      bool
	PreviousPage int
	NextPage     int
	// ShowFirst is set when page 1 lies outside the window.
	ShowFirst bool
	// ShowLast is set when the final page lies outside the window.
	ShowLast bool
}

// Paginate builds the window of pages around current. current is clamped to
// [1,total] and a negative radius is treated as zero. A total below one
// yields an empty window on page 1.
func Paginate(current, total, radius int) PaginationWindow {
	if total < 1 {
		return PaginationWindow{CurrentPage: 1, VisiblePages: []int{}}
	}
	radius = max(radius, 0)
	current = clampInt(current, 1, total)

	// Bound radius by the distance to each edge so huge radii cannot overflow.
	first := current - min(radius, current-1)
	last := current + min(radius, total-current)
	pages := make([]int, 0, last-first+1)
	for page := first; page <= last; page++ {
		pages = append(pages, page)
	}

	window := PaginationWindow{
		CurrentPage:  current,
		TotalPages:   total,
		VisiblePages: pages,
		HasPrevious:  current > 1,
		HasNext:      current < total,
		ShowFirst:    first > 1,
		ShowLast:     last < total,
	}
	if window.HasPrevious {
		window.PreviousPage = current - 1
	}
	if window.HasNext {
		window.NextPage = current + 1
	}
	return window
}

// TotalPagesFor returns how many pages count rows fill at pageSize rows per
// page. pageSize below one is treated as one.
func TotalPagesFor(count, pageSize int) int {
	if count <= 0 {
		return 0
	}
	pageSize = max(pageSize, 1)
	return (count + pageSize - 1) / pageSize
}
