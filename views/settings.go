package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/hikaristudio/lunasite"
)

// Settings renders the tracking-tag settings form. The form itself is
// driven by settings.js: values are stored in localStorage, never
// posted to the server.
func Settings(d lunasite.SettingsData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<article class="settings">`)
		fmt.Fprint(w, "<h1>トラッキングタグ設定</h1>")
		fmt.Fprint(w, "<p>ここで保存したタグはこのブラウザのlocalStorageにのみ保存され、環境変数の設定より優先されます。</p>")

		fmt.Fprint(w, `<section class="presets"><h2>テンプレート</h2>`)
		fmt.Fprint(w, `<div class="preset-row"><label for="ga4-id">GA4測定ID</label>`)
		fmt.Fprint(w, `<input id="ga4-id" type="text" placeholder="G-XXXXXXXXXX"/>`)
		fmt.Fprint(w, `<button id="preset-ga4" type="button">GA4タグを生成</button></div>`)
		fmt.Fprint(w, `<div class="preset-row"><label for="gtm-id">GTMコンテナID</label>`)
		fmt.Fprint(w, `<input id="gtm-id" type="text" placeholder="GTM-XXXXXXX"/>`)
		fmt.Fprint(w, `<button id="preset-gtm" type="button">GTMタグを生成</button></div>`)
		fmt.Fprint(w, "</section>")

		fmt.Fprint(w, `<section class="tag-fields">`)
		writeTagField(w, "head-tags", "headに挿入するタグ", d.Env.HeadTags)
		writeTagField(w, "body-start-tags", "body先頭に挿入するタグ", d.Env.BodyStartTags)
		writeTagField(w, "body-end-tags", "body末尾に挿入するタグ", d.Env.BodyEndTags)
		fmt.Fprint(w, "</section>")

		fmt.Fprint(w, `<div class="actions">`)
		fmt.Fprint(w, `<button id="save-tags" type="button">保存</button>`)
		fmt.Fprint(w, `<button id="clear-tags" type="button">ローカル設定を削除</button>`)
		fmt.Fprint(w, "</div>")
		fmt.Fprint(w, `<p id="settings-message" role="status"></p>`)
		fmt.Fprint(w, "</article>")
		fmt.Fprint(w, `<script src="/public/settings.js" defer></script>`)
		return nil
	})
	return layout(d.Meta, d.Site, body)
}

func writeTagField(w io.Writer, id, label, envValue string) {
	fmt.Fprintf(w, `<div class="tag-field"><label for="%s">%s</label>`, id, esc(label))
	fmt.Fprintf(w, `<textarea id="%s" rows="6" spellcheck="false"></textarea>`, id)
	if envValue != "" {
		fmt.Fprint(w, `<p class="field-note">環境変数によるデフォルト設定があります。</p>`)
	}
	fmt.Fprint(w, "</div>")
}
