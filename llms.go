package lunasite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// handleLLMs serves a plain-text site summary for LLM crawlers.
func (a *App) handleLLMs(c echo.Context) error {
	var b strings.Builder
	a.writeLLMsHeader(&b)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

// handleLLMsFull serves the summary plus the full text of every article.
func (a *App) handleLLMsFull(c echo.Context) error {
	posts, err := a.Content.Posts()
	if err != nil {
		return err
	}
	siteURL := strings.TrimRight(a.Config.URL, "/")

	var b strings.Builder
	a.writeLLMsHeader(&b)
	b.WriteString("\n## 記事\n")
	for _, p := range posts {
		fmt.Fprintf(&b, "\n### %s\n", p.Title)
		fmt.Fprintf(&b, "%s/blog/%s/\n", siteURL, p.Slug)
		fmt.Fprintf(&b, "公開: %s / 更新: %s / カテゴリ: %s\n\n", p.Date, p.Updated, p.Category)
		b.WriteString(p.Body)
		b.WriteString("\n")
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

func (a *App) writeLLMsHeader(b *strings.Builder) {
	siteURL := strings.TrimRight(a.Config.URL, "/")
	fmt.Fprintf(b, "# %s\n\n> %s\n\n", a.Config.Name, a.Config.Description)
	b.WriteString("## アプリ情報\n")
	fmt.Fprintf(b, "- [サービスページ](%s/): 機能紹介・料金プラン・ダウンロード\n", siteURL)
	fmt.Fprintf(b, "- [ブログ一覧](%s/blog/): 開運・暦・タロットの記事一覧\n", siteURL)
	fmt.Fprintf(b, "- [プライバシーポリシー](%s/privacy-policy/): 個人情報の取り扱い\n", siteURL)
}
