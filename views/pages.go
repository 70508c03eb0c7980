package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hikaristudio/lunasite"
)

// Privacy renders the privacy policy page.
func Privacy(d lunasite.PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<article class="page">`)
		fmt.Fprint(w, "<h1>プライバシーポリシー</h1>")
		fmt.Fprintf(w, "<p>%s(以下「当サイト」)は、利用者の個人情報の取り扱いについて以下のとおり定めます。</p>", esc(d.Site.Name))
		fmt.Fprint(w, "<h2>収集する情報</h2>")
		fmt.Fprint(w, "<p>当サイトでは、アクセス解析のためにCookieおよび類似技術を利用することがあります。これらから個人を特定することはありません。</p>")
		fmt.Fprint(w, "<h2>アクセス解析ツール</h2>")
		fmt.Fprint(w, "<p>当サイトはGoogle アナリティクス等のアクセス解析ツールを利用する場合があります。トラフィックデータは匿名で収集され、個人を特定するものではありません。</p>")
		fmt.Fprint(w, "<h2>お問い合わせ</h2>")
		fmt.Fprintf(w, "<p>本ポリシーに関するお問い合わせは、%sまでご連絡ください。</p>", esc(d.Site.Author))
		fmt.Fprint(w, "</article>")
		return nil
	})
	return layout(d.Meta, d.Site, body)
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html><html lang="ja"><head><meta charset="utf-8"/><title>ページが見つかりません</title></head><body><main class="error-page"><h1>404</h1><p>お探しのページは見つかりませんでした。</p><p><a href="/">トップへ戻る</a></p></main></body></html>`)
		return err
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html><html lang="ja"><head><meta charset="utf-8"/><title>エラーが発生しました</title></head><body><main class="error-page"><h1>500</h1><p>サーバーでエラーが発生しました。時間をおいて再度お試しください。</p></main></body></html>`)
		return err
	})
}
