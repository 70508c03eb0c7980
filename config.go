package lunasite

import (
	"time"

	"github.com/hikaristudio/lunasite/tracking"
)

// SiteConfig holds all configuration for a lunasite deployment.
type SiteConfig struct {
	Name        string // site name (default "Luna Fortune Calendar")
	URL         string // canonical URL (default "http://localhost:3000")
	Description string // site description for meta tags, RSS, and JSON-LD
	Author      string // author name for JSON-LD

	Addr       string // listen address (default ":3000")
	ContentDir string // blog markdown directory (default "content/blog")

	// Credentials for the tracking settings surface. Leaving either one
	// empty makes /settings/tracking-tags behave as if it does not exist.
	TrackingAdminUser     string
	TrackingAdminPassword string

	// Process-wide fallback markup for the three injection regions,
	// applied when the visitor's browser holds no stored override.
	TrackingHeadTags      string
	TrackingBodyStartTags string
	TrackingBodyEndTags   string

	ContentCacheTTL time.Duration // post snapshot TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Luna Fortune Calendar"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
}

// EnvTrackingConfig returns the environment-default tag configuration.
func (c SiteConfig) EnvTrackingConfig() tracking.Config {
	return tracking.FromEnv(c.TrackingHeadTags, c.TrackingBodyStartTags, c.TrackingBodyEndTags)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for site-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
