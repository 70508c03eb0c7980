// Package content loads, validates, and queries the blog post set.
//
// Posts live as markdown files with a YAML front matter header. The corpus
// is small and fixed per deployment, so every query re-derives its answer
// from the file set; handlers that need cheap repeated reads wrap the
// Repository in a Cache.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("content: post not found")

var (
	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Repository reads blog posts from a directory of markdown files.
// Files without a .md extension are ignored; a leading underscore marks a
// draft and excludes the file from the set.
type Repository struct {
	fsys fs.FS
	dir  string
}

// NewRepository creates a Repository over dir inside fsys.
// Pass os.DirFS(root) with dir "." to read from disk.
func NewRepository(fsys fs.FS, dir string) *Repository {
	return &Repository{fsys: fsys, dir: path.Clean(dir)}
}

type postMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Updated     string   `yaml:"updated"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	Slug        string   `yaml:"slug"`
}

// validate checks every front matter field and reports all violations at
// once; validation.Errors enumerates them per field.
func (m postMeta) validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Description, validation.Required),
		validation.Field(&m.Date, validation.Required, validation.Match(reDate).Error("must be YYYY-MM-DD")),
		validation.Field(&m.Updated, validation.Required, validation.Match(reDate).Error("must be YYYY-MM-DD")),
		validation.Field(&m.Category, validation.Required, validation.By(checkCategory)),
		validation.Field(&m.Slug, validation.Required, validation.Match(reSlug).Error("must be a lowercase hyphenated token")),
	)
}

func checkCategory(value interface{}) error {
	s, _ := value.(string)
	if !Category(s).Valid() {
		return fmt.Errorf("unknown category %q", s)
	}
	return nil
}

// LoadAll reads and validates the whole post set, sorted by publication
// date descending (stable for equal dates). Any invalid document or
// duplicate slug fails the entire load: a broken post must never reach
// production silently, so callers treat the error as fatal at startup.
func (r *Repository) LoadAll() ([]Post, error) {
	names, err := r.listFiles()
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		post, err := r.parseFile(name)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[post.Slug]; ok {
			return nil, fmt.Errorf("content: duplicate slug %q in %s and %s", post.Slug, prev, name)
		}
		seen[post.Slug] = name
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// FindBySlug returns the post with an exact slug match, or ErrNotFound.
func (r *Repository) FindBySlug(slug string) (Post, error) {
	posts, err := r.LoadAll()
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

// FilterByCategory returns the subsequence of LoadAll with the given
// category, order preserved.
func (r *Repository) FilterByCategory(category Category) ([]Post, error) {
	posts, err := r.LoadAll()
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

// Related returns up to limit other posts ranked for base; see RelatedPosts.
func (r *Repository) Related(base Post, limit int) ([]Post, error) {
	posts, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	return RelatedPosts(base, posts, limit), nil
}

func (r *Repository) listFiles() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("content: read dir %s: %w", r.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *Repository) parseFile(name string) (Post, error) {
	data, err := fs.ReadFile(r.fsys, path.Join(r.dir, name))
	if err != nil {
		return Post{}, fmt.Errorf("content: read %s: %w", name, err)
	}

	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("content: parse front matter of %s: %w", name, err)
	}
	if err := meta.validate(); err != nil {
		return Post{}, fmt.Errorf("content: invalid front matter in %s: %w", name, err)
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}
	return Post{
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Updated:     meta.Updated,
		Category:    Category(meta.Category),
		Tags:        tags,
		Image:       meta.Image,
		Slug:        meta.Slug,
		Body:        strings.TrimSpace(string(body)),
		SourceFile:  name,
		Link:        "/blog/" + meta.Slug + "/",
	}, nil
}
