package helpers

import (
	"errors"
	"strconv"
	"testing"
)

func TestPaginationWindowWithEllipsis(t *testing.T) {
	h := newTestHelpers(t)

	out, err := h.Paginator.Pagination(Paging{Page: 5, PageCount: 20}, PaginationOptions{Modulus: 4})
	if err != nil {
		t.Fatalf("pagination: %v", err)
	}
	want := `<nav aria-label="Page navigation"><ul class="pagination">` +
		`<li><a href="?page=4" aria-label="Previous"><span aria-hidden="true">&laquo;</span></a></li>` +
		`<li><a href="?page=1">1</a></li>` +
		`<li class="disabled"><span>&hellip;</span></li>` +
		`<li><a href="?page=3">3</a></li>` +
		`<li><a href="?page=4">4</a></li>` +
		`<li class="active"><span>5 <span class="sr-only">(current)</span></span></li>` +
		`<li><a href="?page=6">6</a></li>` +
		`<li class="disabled"><span>&hellip;</span></li>` +
		`<li><a href="?page=20">20</a></li>` +
		`<li><a href="?page=6" aria-label="Next"><span aria-hidden="true">&raquo;</span></a></li>` +
		`</ul></nav>`
	assertHTML(t, "pagination", out, want)
}

func TestPaginationEdgesAndCustomURL(t *testing.T) {
	h := newTestHelpers(t)

	out, err := h.Paginator.Pagination(Paging{
		Page:      1,
		PageCount: 3,
		URL:       func(page int) string { return "/posts/" + strconv.Itoa(page) },
	}, PaginationOptions{Size: "sm", Last: "Last"})
	if err != nil {
		t.Fatalf("pagination: %v", err)
	}
	want := `<nav aria-label="Page navigation"><ul class="pagination pagination-sm">` +
		`<li class="disabled"><span aria-label="Previous"><span aria-hidden="true">&laquo;</span></span></li>` +
		`<li class="active"><span>1 <span class="sr-only">(current)</span></span></li>` +
		`<li><a href="/posts/2">2</a></li>` +
		`<li><a href="/posts/3">3</a></li>` +
		`<li><a href="/posts/2" aria-label="Next"><span aria-hidden="true">&raquo;</span></a></li>` +
		`<li><a href="/posts/3" aria-label="Last"><span aria-hidden="true">Last</span></a></li>` +
		`</ul></nav>`
	assertHTML(t, "pagination", out, want)
}

func TestPaginationRejectsBadInput(t *testing.T) {
	h := newTestHelpers(t)

	if out, err := h.Paginator.Pagination(Paging{Page: 1, PageCount: 1}, PaginationOptions{}); err != nil || out != "" {
		t.Fatalf("expected empty output for a single page, got %q (%v)", out, err)
	}
	if _, err := h.Paginator.Pagination(Paging{Page: 0, PageCount: 4}, PaginationOptions{}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for page 0, got %v", err)
	}
	if _, err := h.Paginator.Pagination(Paging{Page: 5, PageCount: 4}, PaginationOptions{}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions past the last page, got %v", err)
	}
	if _, err := h.Paginator.Pagination(Paging{Page: 1, PageCount: 4}, PaginationOptions{Modulus: -1}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for negative modulus, got %v", err)
	}
	if _, err := h.Paginator.Pagination(Paging{Page: 1, PageCount: 4}, PaginationOptions{Size: "xs"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions for size, got %v", err)
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		page, count, modulus int
		start, end           int
	}{
		{1, 20, 8, 1, 8},
		{20, 20, 8, 13, 20},
		{10, 20, 8, 6, 13},
		{2, 5, 8, 1, 5},
	}
	for _, tc := range cases {
		start, end := pageWindow(tc.page, tc.count, tc.modulus)
		if start != tc.start || end != tc.end {
			t.Fatalf("pageWindow(%d, %d, %d) = %d..%d, want %d..%d", tc.page, tc.count, tc.modulus, start, end, tc.start, tc.end)
		}
	}
}

func TestPager(t *testing.T) {
	h := newTestHelpers(t)

	out, err := h.Paginator.Pager(Paging{Page: 1, PageCount: 2}, PagerOptions{})
	if err != nil {
		t.Fatalf("pager: %v", err)
	}
	assertHTML(t, "pager", out, `<nav aria-label="Pager"><ul class="pager"><li class="disabled"><a href="#">Previous</a></li><li><a href="?page=2">Next</a></li></ul></nav>`)

	aligned, err := h.Paginator.Pager(Paging{Page: 2, PageCount: 2}, PagerOptions{Aligned: true, Prev: "Older", Next: "Newer"})
	if err != nil {
		t.Fatalf("pager: %v", err)
	}
	assertHTML(t, "aligned pager", aligned, `<nav aria-label="Pager"><ul class="pager"><li class="previous"><a href="?page=1">Older</a></li><li class="next disabled"><a href="#">Newer</a></li></ul></nav>`)
}
