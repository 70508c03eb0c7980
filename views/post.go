package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hikaristudio/lunasite"
	"github.com/hikaristudio/lunasite/content"
	"github.com/hikaristudio/lunasite/markdown"
)

// Post renders an article page: header, table of contents, rendered
// markdown body, and related articles.
func Post(d lunasite.PostData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<article class="post">`)
		fmt.Fprint(w, "<header>")
		fmt.Fprintf(w, "<h1>%s</h1>", esc(d.Post.Title))
		fmt.Fprintf(w, `<p class="post-meta"><time datetime="%s">公開: %s</time>`, esc(d.Post.Date), esc(d.Post.Date))
		if d.Post.Updated != d.Post.Date {
			fmt.Fprintf(w, ` <time datetime="%s">更新: %s</time>`, esc(d.Post.Updated), esc(d.Post.Updated))
		}
		if label, ok := content.CategoryLabels[d.Post.Category]; ok {
			fmt.Fprintf(w, ` <a class="category-pill" href="/blog/category/%s/">%s</a>`, esc(string(d.Post.Category)), esc(label))
		}
		fmt.Fprint(w, "</p></header>")

		if len(d.Headings) > 0 {
			fmt.Fprint(w, `<nav class="toc"><h2>目次</h2><ul>`)
			for _, h := range d.Headings {
				fmt.Fprintf(w, `<li class="toc-level-%d"><a href="#%s">%s</a></li>`, h.Level, esc(h.ID), esc(h.Text))
			}
			fmt.Fprint(w, "</ul></nav>")
		}

		fmt.Fprint(w, `<div class="post-body">`)
		if err := markdown.Markdown(d.Post.Body).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprint(w, "</div></article>")

		if len(d.Related) > 0 {
			fmt.Fprint(w, `<aside class="related"><h2>関連記事</h2>`)
			for _, p := range d.Related {
				postCard(w, p)
			}
			fmt.Fprint(w, "</aside>")
		}
		return nil
	})
	return layout(d.Meta, d.Site, body)
}
