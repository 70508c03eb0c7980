// Package lunasite is the marketing and content site engine for the Luna
// Fortune Calendar app: a landing page, a markdown-backed blog with
// category pages and pagination, SEO artifacts (sitemap, robots, RSS,
// llms.txt), and a basic-auth-gated screen for configuring injected
// tracking tags.
//
// Users provide their own templ components via the ViewFuncs struct;
// lunasite owns the handlers, middleware, and the content pipeline.
package lunasite

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/hikaristudio/lunasite/content"
)

// ViewFuncs holds the templ components the engine calls when rendering
// pages. This is the inversion-of-control mechanism that lets the site
// own and customize all templates.
type ViewFuncs struct {
	Home        func(HomeData) templ.Component
	BlogIndex   func(BlogIndexData) templ.Component
	Post        func(PostData) templ.Component
	Privacy     func(PageData) templ.Component
	Settings    func(SettingsData) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central lunasite application. It wires together the content
// repository, cache, handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Repo    *content.Repository
	Content *content.Cache
	Views   ViewFuncs

	authLimiter  *AuthLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a lunasite App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start validates the content set, wires middleware and routes, and runs
// the server. A content validation failure aborts startup: a broken post
// must never reach production silently.
func (a *App) Start() error {
	a.Repo = content.NewRepository(os.DirFS(a.Config.ContentDir), ".")
	if _, err := a.Repo.LoadAll(); err != nil {
		return fmt.Errorf("lunasite: content validation: %w", err)
	}
	a.Content = content.NewCache(a.Repo, a.Config.ContentCacheTTL)
	a.authLimiter = NewAuthLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve embedded framework assets (tracking.js, settings.js).
	// These are served under /public/ and fall through to the site's
	// static dir for everything else.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/tracking.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/settings.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)

	// SEO artifacts
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/llms.txt", a.handleLLMs)
	e.GET("/llms-full.txt", a.handleLLMsFull)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/category/:category/", a.handleBlogCategory)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/privacy-policy/", a.handlePrivacy)

	// Tracking settings surface, gated by HTTP Basic auth. With no
	// configured credentials the whole group answers 404.
	settings := e.Group("/settings", a.requireSettingsAuth)
	settings.GET("/tracking-tags/", a.handleSettings)

	api := e.Group("/api/tracking-tags", a.requireSettingsAuth)
	api.GET("/preset", a.handleTrackingPreset)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("lunasite: required environment variable %s is not set", key)
	}
	return v
}
