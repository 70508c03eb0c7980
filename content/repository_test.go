package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func postFile(title, date, category, slug string) *fstest.MapFile {
	doc := `---
title: ` + title + `
description: ` + title + `の説明
date: "` + date + `"
updated: "` + date + `"
category: ` + category + `
slug: ` + slug + `
---

## はじめに

本文です。
`
	return &fstest.MapFile{Data: []byte(doc)}
}

func TestLoadAllSortsByDateDescending(t *testing.T) {
	fsys := fstest.MapFS{
		"older.md":  postFile("古い記事", "2026-01-05", "moon", "older-post"),
		"newest.md": postFile("新しい記事", "2026-03-01", "tarot", "newest-post"),
		"middle.md": postFile("中間の記事", "2026-02-10", "kaiun", "middle-post"),
	}
	repo := NewRepository(fsys, ".")

	posts, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	wantOrder := []string{"newest-post", "middle-post", "older-post"}
	for i, want := range wantOrder {
		if posts[i].Slug != want {
			t.Errorf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, want)
		}
	}
}

func TestLoadAllStableForEqualDates(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": postFile("記事A", "2026-02-10", "moon", "post-a"),
		"b.md": postFile("記事B", "2026-02-10", "moon", "post-b"),
	}
	repo := NewRepository(fsys, ".")

	posts, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	// Files are read in name order; equal dates keep that order.
	if posts[0].Slug != "post-a" || posts[1].Slug != "post-b" {
		t.Errorf("unexpected order: %q, %q", posts[0].Slug, posts[1].Slug)
	}
}

func TestLoadAllSkipsDraftsAndNonMarkdown(t *testing.T) {
	fsys := fstest.MapFS{
		"published.md": postFile("公開記事", "2026-01-01", "guide", "published"),
		"_draft.md":    postFile("下書き", "2026-01-02", "guide", "draft"),
		"notes.txt":    {Data: []byte("not a post")},
		"image.png":    {Data: []byte{0x89}},
	}
	repo := NewRepository(fsys, ".")

	posts, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "published" {
		t.Fatalf("expected only the published post, got %+v", posts)
	}
}

func TestLoadAllMissingDirYieldsEmptySet(t *testing.T) {
	repo := NewRepository(fstest.MapFS{}, "content/blog")

	posts, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty set, got %d posts", len(posts))
	}
}

func TestLoadAllRejectsDuplicateSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"one.md": postFile("記事1", "2026-01-01", "tarot", "same-slug"),
		"two.md": postFile("記事2", "2026-01-02", "moon", "same-slug"),
	}
	repo := NewRepository(fsys, ".")

	_, err := repo.LoadAll()
	if err == nil {
		t.Fatal("expected duplicate slug error")
	}
	if !strings.Contains(err.Error(), "same-slug") {
		t.Errorf("error should name the slug: %v", err)
	}
}

func TestLoadAllRejectsInvalidFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		file *fstest.MapFile
	}{
		{"bad date", postFile("記事", "01/02/2026", "moon", "bad-date")},
		{"unknown category", postFile("記事", "2026-01-02", "astrology", "bad-category")},
		{"bad slug", postFile("記事", "2026-01-02", "moon", "Bad_Slug")},
		{"missing title", postFile("", "2026-01-02", "moon", "no-title")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository(fstest.MapFS{"post.md": tt.file}, ".")
			if _, err := repo.LoadAll(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseFilePopulatesDerivedFields(t *testing.T) {
	fsys := fstest.MapFS{
		"post.md": postFile("月齢の話", "2026-04-01", "moon", "moon-age"),
	}
	repo := NewRepository(fsys, ".")

	post, err := repo.FindBySlug("moon-age")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if post.Link != "/blog/moon-age/" {
		t.Errorf("Link = %q, want %q", post.Link, "/blog/moon-age/")
	}
	if post.SourceFile != "post.md" {
		t.Errorf("SourceFile = %q, want %q", post.SourceFile, "post.md")
	}
	if post.Tags == nil {
		t.Error("Tags should be an empty slice, not nil")
	}
	if strings.HasPrefix(post.Body, "\n") || !strings.HasPrefix(post.Body, "## はじめに") {
		t.Errorf("Body should be trimmed, got %q", post.Body)
	}
}

func TestFindBySlugNotFound(t *testing.T) {
	fsys := fstest.MapFS{
		"post.md": postFile("記事", "2026-01-01", "tarot", "exists"),
	}
	repo := NewRepository(fsys, ".")

	if _, err := repo.FindBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilterByCategory(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": postFile("タロット記事", "2026-03-01", "tarot", "tarot-post"),
		"b.md": postFile("月の記事", "2026-02-01", "moon", "moon-post"),
		"c.md": postFile("タロット記事2", "2026-01-01", "tarot", "tarot-post-2"),
	}
	repo := NewRepository(fsys, ".")

	posts, err := repo.FilterByCategory(CategoryTarot)
	if err != nil {
		t.Fatalf("FilterByCategory: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 tarot posts, got %d", len(posts))
	}
	if posts[0].Slug != "tarot-post" || posts[1].Slug != "tarot-post-2" {
		t.Errorf("unexpected order: %q, %q", posts[0].Slug, posts[1].Slug)
	}
}
