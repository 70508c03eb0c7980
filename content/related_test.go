package content

import "testing"

func relatedFixture() (Post, []Post) {
	base := Post{Slug: "base", Category: CategoryMoon}
	posts := []Post{
		{Slug: "tarot-1", Category: CategoryTarot},
		{Slug: "moon-1", Category: CategoryMoon},
		{Slug: "base", Category: CategoryMoon},
		{Slug: "kaiun-1", Category: CategoryKaiun},
		{Slug: "moon-2", Category: CategoryMoon},
	}
	return base, posts
}

func TestRelatedPostsSameCategoryFirst(t *testing.T) {
	base, posts := relatedFixture()

	got := RelatedPosts(base, posts, 4)
	want := []string{"moon-1", "moon-2", "tarot-1", "kaiun-1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d posts, got %d", len(want), len(got))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Errorf("got[%d].Slug = %q, want %q", i, got[i].Slug, slug)
		}
	}
}

func TestRelatedPostsExcludesBase(t *testing.T) {
	base, posts := relatedFixture()

	for _, p := range RelatedPosts(base, posts, 10) {
		if p.Slug == base.Slug {
			t.Fatal("base post must not appear in its own related list")
		}
	}
}

func TestRelatedPostsLimit(t *testing.T) {
	base, posts := relatedFixture()

	if got := RelatedPosts(base, posts, 2); len(got) != 2 {
		t.Errorf("limit 2: got %d posts", len(got))
	}
	if got := RelatedPosts(base, posts, 0); got != nil {
		t.Errorf("limit 0: expected nil, got %v", got)
	}
	if got := RelatedPosts(base, posts, -1); got != nil {
		t.Errorf("negative limit: expected nil, got %v", got)
	}
}

func TestRelatedPostsFewerCandidatesThanLimit(t *testing.T) {
	base := Post{Slug: "only", Category: CategoryGuide}
	posts := []Post{{Slug: "only", Category: CategoryGuide}}

	if got := RelatedPosts(base, posts, 3); len(got) != 0 {
		t.Errorf("expected no related posts, got %v", got)
	}
}
