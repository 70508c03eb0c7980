package content

import (
	"sync"
	"time"
)

// Cache is an in-memory snapshot of the validated post set with a TTL.
// The Repository stays cache-free; HTTP handlers go through Cache so a
// request burst does not re-read and re-validate the content directory.
type Cache struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	ttl     time.Duration
	repo    *Repository
}

// NewCache creates a Cache backed by the given Repository.
func NewCache(repo *Repository, ttl time.Duration) *Cache {
	return &Cache{repo: repo, ttl: ttl}
}

func (c *Cache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the snapshot so the next read triggers a fresh load.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns the cached post set after refreshing it if stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *Cache) ensureLoaded() ([]Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}

// Posts returns all posts, date descending.
func (c *Cache) Posts() ([]Post, error) {
	return c.ensureLoaded()
}

// FindBySlug returns the post with an exact slug match, or ErrNotFound.
func (c *Cache) FindBySlug(slug string) (Post, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// FilterByCategory returns posts in the given category, order preserved.
func (c *Cache) FilterByCategory(category Category) ([]Post, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var filtered []Post
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Related returns up to limit posts related to base from the snapshot.
func (c *Cache) Related(base Post, limit int) ([]Post, error) {
	posts, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return RelatedPosts(base, posts, limit), nil
}
