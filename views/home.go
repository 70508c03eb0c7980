package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hikaristudio/lunasite"
)

// Home renders the landing page: hero, feature highlights, download
// links, and a teaser of the latest articles.
func Home(d lunasite.HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<section class="hero">`)
		fmt.Fprintf(w, "<h1>%s</h1>", esc(d.Site.Name))
		fmt.Fprintf(w, "<p>%s</p>", esc(d.Site.Description))
		fmt.Fprint(w, `<div class="store-links">`)
		fmt.Fprint(w, `<a class="store-badge" href="https://apps.apple.com/" rel="noopener">App Store</a>`)
		fmt.Fprint(w, `<a class="store-badge" href="https://play.google.com/" rel="noopener">Google Play</a>`)
		fmt.Fprint(w, "</div></section>")

		fmt.Fprint(w, `<section class="features"><h2>できること</h2><ul>`)
		fmt.Fprint(w, "<li>月齢と旧暦をひと目で確認できるカレンダー</li>")
		fmt.Fprint(w, "<li>一粒万倍日や天赦日などの開運日を通知</li>")
		fmt.Fprint(w, "<li>毎日のタロットカードで運勢をチェック</li>")
		fmt.Fprint(w, "</ul></section>")

		if len(d.Posts) > 0 {
			fmt.Fprint(w, `<section class="latest-posts"><h2>新着記事</h2>`)
			for _, p := range d.Posts {
				postCard(w, p)
			}
			fmt.Fprint(w, `<p><a href="/blog/">記事一覧へ</a></p></section>`)
		}
		return nil
	})
	return layout(d.Meta, d.Site, body)
}
