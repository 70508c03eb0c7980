package lunasite

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/hikaristudio/lunasite/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJSONLD returns a JSON-LD string for a WebSite schema.
func WebsiteJSONLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJSONLD(data)
}

// BlogJSONLD returns a JSON-LD string for the blog index page.
func BlogJSONLD(cfg SiteConfig) string {
	return marshalJSONLD(map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Blog",
		"name":        "ブログ | " + cfg.Name,
		"url":         BuildURL(cfg.URL, "blog"),
		"description": cfg.Description,
	})
}

// WebPageJSONLD returns a JSON-LD string for a generic WebPage schema.
func WebPageJSONLD(name, description, pageURL string) string {
	return marshalJSONLD(map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        name,
		"description": description,
		"url":         pageURL,
	})
}

// BlogPostingJSONLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJSONLD(post content.Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Description,
		"datePublished": post.Date,
		"dateModified":  post.Updated,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJSONLD(data)
}

// BreadcrumbItem is one entry of a BreadcrumbList JSON-LD block.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// BreadcrumbJSONLD returns a JSON-LD string for a BreadcrumbList schema.
func BreadcrumbJSONLD(items []BreadcrumbItem) string {
	elements := make([]map[string]interface{}, len(items))
	for i, item := range items {
		elements[i] = map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		}
	}
	return marshalJSONLD(map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	})
}

func marshalJSONLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
