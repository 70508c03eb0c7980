package lunasite

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hikaristudio/lunasite/content"
	"github.com/hikaristudio/lunasite/tracking"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Content.Posts()
	if err != nil {
		return err
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}
	meta := PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
		JSONLD:      []string{WebsiteJSONLD(a.Config)},
	}
	return Render(c, a.Views.Home(HomeData{Meta: meta, Site: a.Config, Posts: posts}))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	posts, err := a.Content.Posts()
	if err != nil {
		return err
	}
	page := content.Paginate(posts, c.QueryParam("page"))
	blogURL := BuildURL(a.Config.URL, "blog")
	meta := PageMeta{
		Title:       "ブログ | " + a.Config.Name,
		Description: a.Config.Description,
		URL:         blogURL,
		OGType:      "website",
		JSONLD: []string{
			BlogJSONLD(a.Config),
			BreadcrumbJSONLD([]BreadcrumbItem{
				{Name: a.Config.Name, URL: BuildURL(a.Config.URL)},
				{Name: "ブログ", URL: blogURL},
			}),
		},
	}
	return Render(c, a.Views.BlogIndex(BlogIndexData{
		Meta:       meta,
		Site:       a.Config,
		Page:       page,
		Categories: content.Categories(),
	}))
}

func (a *App) handleBlogCategory(c echo.Context) error {
	category := content.Category(c.Param("category"))
	if !category.Valid() {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	posts, err := a.Content.FilterByCategory(category)
	if err != nil {
		return err
	}
	page := content.Paginate(posts, c.QueryParam("page"))
	label := content.CategoryLabels[category]
	categoryURL := BuildURL(a.Config.URL, "blog", "category", string(category))
	meta := PageMeta{
		Title:       label + " | " + a.Config.Name,
		Description: content.CategoryDescriptions[category],
		URL:         categoryURL,
		OGType:      "website",
		JSONLD: []string{
			WebPageJSONLD(label, content.CategoryDescriptions[category], categoryURL),
			BreadcrumbJSONLD([]BreadcrumbItem{
				{Name: a.Config.Name, URL: BuildURL(a.Config.URL)},
				{Name: "ブログ", URL: BuildURL(a.Config.URL, "blog")},
				{Name: label, URL: categoryURL},
			}),
		},
	}
	return Render(c, a.Views.BlogIndex(BlogIndexData{
		Meta:          meta,
		Site:          a.Config,
		Page:          page,
		Category:      category,
		CategoryLabel: label,
		CategoryDesc:  content.CategoryDescriptions[category],
		Categories:    content.Categories(),
	}))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Content.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	related, err := a.Content.Related(post, 3)
	if err != nil {
		return err
	}
	postURL := BuildURL(a.Config.URL, "blog", post.Slug)
	meta := PageMeta{
		Title:       post.Title + " | " + a.Config.Name,
		Description: post.Description,
		URL:         postURL,
		OGType:      "article",
		JSONLD: []string{
			BlogPostingJSONLD(post, a.Config),
			BreadcrumbJSONLD([]BreadcrumbItem{
				{Name: a.Config.Name, URL: BuildURL(a.Config.URL)},
				{Name: "ブログ", URL: BuildURL(a.Config.URL, "blog")},
				{Name: post.Title, URL: postURL},
			}),
		},
	}
	return Render(c, a.Views.Post(PostData{
		Meta:     meta,
		Site:     a.Config,
		Post:     post,
		Headings: content.ExtractHeadings(post.Body),
		Related:  related,
	}))
}

func (a *App) handlePrivacy(c echo.Context) error {
	pageURL := BuildURL(a.Config.URL, "privacy-policy")
	meta := PageMeta{
		Title:       "プライバシーポリシー | " + a.Config.Name,
		Description: "個人情報の取り扱いについて説明します。",
		URL:         pageURL,
		OGType:      "website",
		JSONLD:      []string{WebPageJSONLD("プライバシーポリシー", "個人情報の取り扱いについて説明します。", pageURL)},
	}
	return Render(c, a.Views.Privacy(PageData{Meta: meta, Site: a.Config}))
}

func (a *App) handleSettings(c echo.Context) error {
	meta := PageMeta{
		Title:       "トラッキングタグ設定 | " + a.Config.Name,
		Description: "アクセス解析タグの設定画面",
		URL:         BuildURL(a.Config.URL, "settings", "tracking-tags"),
		OGType:      "website",
	}
	return Render(c, a.Views.Settings(SettingsData{
		Meta: meta,
		Site: a.Config,
		Env:  a.Config.EnvTrackingConfig(),
	}))
}

// handleTrackingPreset returns a canned tag configuration for the given
// vendor ID, used by the settings form to prefill the three regions.
func (a *App) handleTrackingPreset(c echo.Context) error {
	id := c.QueryParam("id")
	var preset tracking.Config
	switch c.QueryParam("type") {
	case "ga4":
		preset = tracking.GA4Preset(id)
	case "gtm":
		preset = tracking.GTMPreset(id)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown preset type")
	}
	return c.JSON(http.StatusOK, preset)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Content.Posts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Content.Posts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	siteURL := strings.TrimRight(a.Config.URL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /settings/\n")
	b.WriteString("Allow: /\n\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", siteURL)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
