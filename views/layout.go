// Package views provides the default templ components for the Luna
// Fortune Calendar site. Components are hand-written ComponentFuncs so
// the whole page pipeline stays plain Go; sites that want a different
// look supply their own lunasite.ViewFuncs instead.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hikaristudio/lunasite"
	"github.com/hikaristudio/lunasite/content"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// trackingEnvJSON serializes the environment tag defaults for the
// browser-side injector. json.Marshal escapes angle brackets, so the
// output is safe to embed in a script element.
func trackingEnvJSON(site lunasite.SiteConfig) string {
	b, err := json.Marshal(site.EnvTrackingConfig())
	if err != nil {
		return "{}"
	}
	return string(b)
}

// layout wraps a page body in the shared document shell: meta tags,
// JSON-LD blocks, header navigation, footer, and the tag injector hook.
func layout(meta lunasite.PageMeta, site lunasite.SiteConfig, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, "<!doctype html><html lang=\"ja\"><head>")
		fmt.Fprint(w, `<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		fmt.Fprintf(w, "<title>%s</title>", esc(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(w, `<meta name="description" content="%s"/>`, esc(meta.Description))
		}
		if meta.URL != "" {
			fmt.Fprintf(w, `<link rel="canonical" href="%s"/>`, esc(meta.URL))
			fmt.Fprintf(w, `<meta property="og:url" content="%s"/>`, esc(meta.URL))
		}
		fmt.Fprintf(w, `<meta property="og:title" content="%s"/>`, esc(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(w, `<meta property="og:description" content="%s"/>`, esc(meta.Description))
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		fmt.Fprintf(w, `<meta property="og:type" content="%s"/>`, esc(ogType))
		fmt.Fprintf(w, `<meta property="og:site_name" content="%s"/>`, esc(site.Name))
		for _, block := range meta.JSONLD {
			fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, block)
		}
		fmt.Fprint(w, `<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		fmt.Fprint(w, `<link rel="alternate" type="application/rss+xml" href="/feed.xml"/>`)
		fmt.Fprint(w, `<link rel="stylesheet" href="/public/styles.css"/>`)
		fmt.Fprintf(w, `<script type="application/json" id="lunasite-tracking-env">%s</script>`, trackingEnvJSON(site))
		fmt.Fprint(w, `<script src="/public/tracking.js" defer></script>`)
		fmt.Fprint(w, "</head><body>")

		fmt.Fprint(w, `<header class="site-header"><nav>`)
		fmt.Fprintf(w, `<a class="brand" href="/">%s</a>`, esc(site.Name))
		fmt.Fprint(w, `<a href="/blog/">ブログ</a>`)
		fmt.Fprint(w, `<a href="/privacy-policy/">プライバシーポリシー</a>`)
		fmt.Fprint(w, "</nav></header><main>")

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		fmt.Fprint(w, "</main>")
		fmt.Fprintf(w, `<footer class="site-footer"><p>&copy; %s</p></footer>`, esc(site.Name))
		fmt.Fprint(w, "</body></html>")
		return nil
	})
}

// postCard renders one article summary card, shared by the landing page
// teaser, the blog index, and the related-posts block.
func postCard(w io.Writer, p content.Post) {
	fmt.Fprint(w, `<article class="post-card">`)
	fmt.Fprintf(w, `<a href="%s"><h3>%s</h3></a>`, esc(p.Link), esc(p.Title))
	fmt.Fprintf(w, `<p class="post-meta"><time datetime="%s">%s</time>`, esc(p.Date), esc(p.Date))
	if label, ok := content.CategoryLabels[p.Category]; ok {
		fmt.Fprintf(w, ` <a class="category-pill" href="/blog/category/%s/">%s</a>`, esc(string(p.Category)), esc(label))
	}
	fmt.Fprint(w, "</p>")
	if p.Description != "" {
		fmt.Fprintf(w, "<p>%s</p>", esc(p.Description))
	}
	fmt.Fprint(w, "</article>")
}
