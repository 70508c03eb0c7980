package content

import (
	"testing"
	"testing/fstest"
	"time"
)

func TestCacheServesSnapshotUntilInvalidated(t *testing.T) {
	fsys := fstest.MapFS{
		"first.md": postFile("記事1", "2026-01-01", "moon", "first"),
	}
	cache := NewCache(NewRepository(fsys, "."), time.Hour)

	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}

	// A new file must not show up while the snapshot is fresh.
	fsys["second.md"] = postFile("記事2", "2026-01-02", "moon", "second")
	posts, err = cache.Posts()
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected stale snapshot with 1 post, got %d", len(posts))
	}

	cache.Invalidate()
	posts, err = cache.Posts()
	if err != nil {
		t.Fatalf("Posts after Invalidate: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts after invalidation, got %d", len(posts))
	}
}

func TestCacheReloadsAfterTTL(t *testing.T) {
	fsys := fstest.MapFS{
		"first.md": postFile("記事1", "2026-01-01", "moon", "first"),
	}
	cache := NewCache(NewRepository(fsys, "."), 30*time.Millisecond)

	if _, err := cache.Posts(); err != nil {
		t.Fatalf("Posts: %v", err)
	}
	fsys["second.md"] = postFile("記事2", "2026-01-02", "moon", "second")

	time.Sleep(50 * time.Millisecond)
	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts after TTL: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected fresh snapshot with 2 posts, got %d", len(posts))
	}
}

func TestCacheFindBySlug(t *testing.T) {
	fsys := fstest.MapFS{
		"post.md": postFile("記事", "2026-01-01", "guide", "guide-post"),
	}
	cache := NewCache(NewRepository(fsys, "."), time.Hour)

	post, err := cache.FindBySlug("guide-post")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if post.Category != CategoryGuide {
		t.Errorf("Category = %q, want %q", post.Category, CategoryGuide)
	}
	if _, err := cache.FindBySlug("nope"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
