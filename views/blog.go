package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hikaristudio/lunasite"
	"github.com/hikaristudio/lunasite/content"
)

// BlogIndex renders the paginated article list, for both the all-posts
// index and single-category pages.
func BlogIndex(d lunasite.BlogIndexData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d.Category != "" {
			fmt.Fprintf(w, "<h1>%s</h1>", esc(d.CategoryLabel))
			if d.CategoryDesc != "" {
				fmt.Fprintf(w, `<p class="category-desc">%s</p>`, esc(d.CategoryDesc))
			}
		} else {
			fmt.Fprint(w, "<h1>ブログ</h1>")
		}

		fmt.Fprint(w, `<nav class="category-nav">`)
		fmt.Fprint(w, `<a href="/blog/">すべて</a>`)
		for _, cat := range d.Categories {
			class := ""
			if cat == d.Category {
				class = ` class="active"`
			}
			fmt.Fprintf(w, `<a%s href="/blog/category/%s/">%s</a>`, class, esc(string(cat)), esc(content.CategoryLabels[cat]))
		}
		fmt.Fprint(w, "</nav>")

		if len(d.Page.Posts) == 0 {
			fmt.Fprint(w, "<p>記事はまだありません。</p>")
		}
		fmt.Fprint(w, `<div class="post-list">`)
		for _, p := range d.Page.Posts {
			postCard(w, p)
		}
		fmt.Fprint(w, "</div>")

		writePagination(w, d)
		return nil
	})
	return layout(d.Meta, d.Site, body)
}

func writePagination(w io.Writer, d lunasite.BlogIndexData) {
	if d.Page.TotalPages <= 1 {
		return
	}
	base := "/blog/"
	if d.Category != "" {
		base = fmt.Sprintf("/blog/category/%s/", d.Category)
	}
	fmt.Fprint(w, `<nav class="pagination">`)
	if d.Page.Number > 1 {
		fmt.Fprintf(w, `<a rel="prev" href="%s">前へ</a>`, esc(pageHref(base, d.Page.Number-1)))
	}
	fmt.Fprintf(w, "<span>%d / %d</span>", d.Page.Number, d.Page.TotalPages)
	if d.Page.Number < d.Page.TotalPages {
		fmt.Fprintf(w, `<a rel="next" href="%s">次へ</a>`, esc(pageHref(base, d.Page.Number+1)))
	}
	fmt.Fprint(w, "</nav>")
}

func pageHref(base string, page int) string {
	if page <= 1 {
		return base
	}
	return fmt.Sprintf("%s?page=%d", base, page)
}
