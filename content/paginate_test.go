package content

import (
	"strconv"
	"testing"
)

func makePosts(n int) []Post {
	posts := make([]Post, n)
	for i := range posts {
		posts[i] = Post{Slug: "post-" + strconv.Itoa(i)}
	}
	return posts
}

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"  ", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
		{"2.9", 2},
		{"0.4", 1},
		{" 4 ", 4},
	}
	for _, tt := range tests {
		if got := ParsePageParam(tt.input); got != tt.want {
			t.Errorf("ParsePageParam(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPaginateEmptyList(t *testing.T) {
	page := Paginate(nil, "3")
	if page.Posts == nil || len(page.Posts) != 0 {
		t.Errorf("Posts should be an empty slice, got %v", page.Posts)
	}
	if page.Number != 1 || page.TotalPages != 1 || page.TotalItems != 0 {
		t.Errorf("got %+v, want page 1 of 1 with 0 items", page)
	}
}

func TestPaginateWindows(t *testing.T) {
	posts := makePosts(PageSize + 1) // 13 posts, 2 pages

	first := Paginate(posts, "1")
	if len(first.Posts) != PageSize || first.Number != 1 || first.TotalPages != 2 {
		t.Errorf("page 1: got %d posts, number %d of %d", len(first.Posts), first.Number, first.TotalPages)
	}
	if first.Posts[0].Slug != "post-0" {
		t.Errorf("page 1 should start at post-0, got %q", first.Posts[0].Slug)
	}

	second := Paginate(posts, "2")
	if len(second.Posts) != 1 || second.Number != 2 {
		t.Errorf("page 2: got %d posts, number %d", len(second.Posts), second.Number)
	}
	if second.Posts[0].Slug != "post-12" {
		t.Errorf("page 2 should hold post-12, got %q", second.Posts[0].Slug)
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	posts := makePosts(PageSize + 1)

	over := Paginate(posts, "99")
	if over.Number != 2 {
		t.Errorf("over-range page should clamp to last page, got %d", over.Number)
	}
	under := Paginate(posts, "-5")
	if under.Number != 1 {
		t.Errorf("under-range page should clamp to first page, got %d", under.Number)
	}
	junk := Paginate(posts, "banana")
	if junk.Number != 1 {
		t.Errorf("junk page param should yield page 1, got %d", junk.Number)
	}
}

func TestPaginateTotalItems(t *testing.T) {
	posts := makePosts(30)
	page := Paginate(posts, "2")
	if page.TotalItems != 30 {
		t.Errorf("TotalItems = %d, want 30", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
}
