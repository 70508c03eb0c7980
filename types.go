package lunasite

import (
	"github.com/hikaristudio/lunasite/content"
	"github.com/hikaristudio/lunasite/tracking"
)

// PageMeta carries per-page SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string   // canonical + og:url
	OGType      string   // "website" or "article"
	JSONLD      []string // serialized JSON-LD blocks for the page
}

// HomeData feeds the landing page template.
type HomeData struct {
	Meta  PageMeta
	Site  SiteConfig
	Posts []content.Post // latest posts teaser
}

// BlogIndexData feeds the paginated blog index and category pages.
type BlogIndexData struct {
	Meta          PageMeta
	Site          SiteConfig
	Page          content.Page
	Category      content.Category // empty on the all-posts index
	CategoryLabel string
	CategoryDesc  string
	Categories    []content.Category
}

// PostData feeds the article page template.
type PostData struct {
	Meta     PageMeta
	Site     SiteConfig
	Post     content.Post
	Headings []content.Heading
	Related  []content.Post
}

// PageData feeds simple static pages such as the privacy policy.
type PageData struct {
	Meta PageMeta
	Site SiteConfig
}

// SettingsData feeds the tracking-tag settings form.
type SettingsData struct {
	Meta PageMeta
	Site SiteConfig
	Env  tracking.Config // environment defaults, shown as the fallback layer
}
